package export

import (
	"fmt"
	"io"

	"nihongoclass/internal/models"

	"github.com/xuri/excelize/v2"
)

// VocabularySheet is the worksheet the vocabulary export writes to
const VocabularySheet = "Sheet1"

var vocabularyHeader = []string{"日本語", "한국어", "발음"}

// WriteVocabularyXLSX writes words as an Excel workbook with a bold header row
func WriteVocabularyXLSX(w io.Writer, words []models.VocabWord) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, title := range vocabularyHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(VocabularySheet, cell, title); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(VocabularySheet, "A1", "C1", bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(VocabularySheet, "A", "C", 18); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	for i, word := range words {
		row := i + 2
		values := []string{word.Japanese, word.Korean, word.Pronunciation}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(VocabularySheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
