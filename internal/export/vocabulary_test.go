package export

import (
	"bytes"
	"testing"

	"nihongoclass/internal/models"

	"github.com/xuri/excelize/v2"
)

func TestWriteVocabularyXLSX(t *testing.T) {
	words := []models.VocabWord{
		{Japanese: "学校", Korean: "학교", Pronunciation: "gakkou"},
		{Japanese: "友達", Korean: "친구", Pronunciation: "tomodachi"},
	}

	var buf bytes.Buffer
	if err := WriteVocabularyXLSX(&buf, words); err != nil {
		t.Fatalf("WriteVocabularyXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(VocabularySheet)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}

	want := [][]string{
		{"日本語", "한국어", "발음"},
		{"学校", "학교", "gakkou"},
		{"友達", "친구", "tomodachi"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("cell (%d,%d) = %q, want %q", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

func TestWriteVocabularyXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteVocabularyXLSX(&buf, nil); err != nil {
		t.Fatalf("WriteVocabularyXLSX() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected a workbook even without words")
	}
}
