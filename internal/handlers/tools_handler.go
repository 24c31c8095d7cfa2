package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"nihongoclass/internal/content"
	"nihongoclass/internal/export"
	"nihongoclass/internal/quiz"
	"nihongoclass/internal/service"
)

const (
	quizSelectNotice = "선택지를 골라 주세요!"
	quizStaleNotice  = "이미 채점된 문제예요. 새 문제를 풀어 보세요."
)

// ToolsHandler serves the mini tools page: kana quiz, phrase combiner and
// vocabulary table.
type ToolsHandler struct {
	quiz      *service.QuizService
	templates *template.Template
}

// NewToolsHandler creates a new tools handler
func NewToolsHandler(quizService *service.QuizService, templates *template.Template) *ToolsHandler {
	return &ToolsHandler{quiz: quizService, templates: templates}
}

// Show displays the tools page, drawing a first question for new visitors
func (h *ToolsHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.renderTools(w, r, http.StatusOK, nil, defaultCombiner())
}

// Answer grades the submitted choice and shows the feedback together with
// the next question.
func (h *ToolsHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	round, err := strconv.Atoi(r.FormValue("round"))
	if err != nil {
		round = 0
	}
	chosen := r.FormValue("choice")

	var feedback *QuizFeedback
	result, err := h.quiz.Answer(r.Context(), sess, round, chosen)
	switch {
	case err == nil:
		feedback = &QuizFeedback{Correct: result.Correct, Answer: result.Answer}
	case errors.Is(err, quiz.ErrSelectionRequired):
		feedback = &QuizFeedback{Warning: quizSelectNotice}
	case errors.Is(err, service.ErrStaleQuestion):
		feedback = &QuizFeedback{Warning: quizStaleNotice}
	default:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error grading quiz answer", err)
		return
	}

	h.renderTools(w, r, http.StatusOK, feedback, defaultCombiner())
}

// Skip replaces the current question without grading it
func (h *ToolsHandler) Skip(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if err := h.quiz.Skip(r.Context(), sess); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error skipping quiz question", err)
		return
	}
	http.Redirect(w, r, "/tools#quiz", http.StatusSeeOther)
}

// Reset clears the visitor's score and history
func (h *ToolsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if err := h.quiz.Reset(r.Context(), sess); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error resetting quiz", err)
		return
	}
	http.Redirect(w, r, "/tools#quiz", http.StatusSeeOther)
}

// State returns the visitor's quiz progress as JSON without changing it
func (h *ToolsHandler) State(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	snap, err := h.quiz.Snapshot(r.Context(), sess.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading quiz state", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		log.Printf("Error encoding quiz state: %v", err)
	}
}

// Combine builds a sentence from the chosen situation, phrase and name
func (h *ToolsHandler) Combine(w http.ResponseWriter, r *http.Request) {
	form := CombinerForm{
		Situation: r.FormValue("situation"),
		Phrase:    r.FormValue("phrase"),
		Name:      r.FormValue("name"),
	}

	status := http.StatusOK
	result, err := content.Combine(form.Situation, form.Phrase, form.Name)
	switch {
	case err == nil:
		form.Result = result
	case errors.Is(err, content.ErrUnknownSituation):
		form.Error = "상황을 골라 주세요."
		status = http.StatusBadRequest
	case errors.Is(err, content.ErrUnknownPhrase):
		form.Error = "선택한 상황에 맞는 표현을 골라 주세요."
		status = http.StatusBadRequest
	default:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error combining phrase", err)
		return
	}

	h.renderTools(w, r, status, nil, form)
}

// Vocabulary downloads the vocabulary table as an Excel workbook
func (h *ToolsHandler) Vocabulary(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.WriteVocabularyXLSX(&buf, content.Vocabulary); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error exporting vocabulary", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="vocabulary.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing vocabulary export: %v", err)
	}
}

func defaultCombiner() CombinerForm {
	first := content.PhraseGroups[0]
	return CombinerForm{Situation: first.Situation, Phrase: first.Phrases[0]}
}

func (h *ToolsHandler) renderTools(w http.ResponseWriter, r *http.Request, status int, feedback *QuizFeedback, combiner CombinerForm) {
	sess := GetSessionFromContext(r.Context())
	snap, err := h.quiz.Current(r.Context(), sess)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading quiz", err)
		return
	}

	render(w, h.templates, "tools.tmpl", status, ToolsViewData{
		Page:       newPage(r, "미니 학습도구", "tools"),
		Quiz:       snap,
		Feedback:   feedback,
		Groups:     content.PhraseGroups,
		Combiner:   combiner,
		Vocabulary: content.Vocabulary,
	})
}
