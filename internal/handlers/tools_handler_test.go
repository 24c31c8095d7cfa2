package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"nihongoclass/internal/models"
	"nihongoclass/internal/service"

	"github.com/xuri/excelize/v2"
)

func setupTools(t *testing.T) (*ToolsHandler, *service.QuizService, *models.BrowserSession) {
	t.Helper()
	svc := newTestQuizService(42)
	return NewToolsHandler(svc, loadTestTemplates(t)), svc, newTestSession(t)
}

func postAnswer(h *ToolsHandler, sess *models.BrowserSession, round int, choice string) *httptest.ResponseRecorder {
	form := url.Values{
		CSRFFormField: {sess.CSRFToken},
		"round":       {strconv.Itoa(round)},
	}
	if choice != "" {
		form.Set("choice", choice)
	}
	rec := httptest.NewRecorder()
	h.Answer(rec, withSession(newFormRequest(http.MethodPost, "/tools/quiz/answer", form), sess))
	return rec
}

func TestToolsShow(t *testing.T) {
	h, svc, sess := setupTools(t)

	rec := httptest.NewRecorder()
	h.Show(rec, withSession(httptest.NewRequest(http.MethodGet, "/tools", nil), sess))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	snap, err := svc.Snapshot(context.Background(), sess.ID)
	if err != nil || snap.Question == nil {
		t.Fatalf("Show() should draw a question, got %+v, %v", snap, err)
	}

	body := rec.Body.String()
	for _, want := range []string{snap.Question.Symbol, "발음을 고르세요", "점수: 0 / 시도: 0", "ありがとう", "履歴書"} {
		if !strings.Contains(body, want) {
			t.Errorf("body is missing %q", want)
		}
	}
	for _, opt := range snap.Question.Options {
		if !strings.Contains(body, `value="`+opt+`"`) {
			t.Errorf("body is missing option %q", opt)
		}
	}
}

func TestToolsAnswer(t *testing.T) {
	h, svc, sess := setupTools(t)
	ctx := context.Background()

	snap, err := svc.Current(ctx, sess)
	if err != nil {
		t.Fatal(err)
	}
	answer, _ := svc.Table().Reading(snap.Question.Symbol)

	rec := postAnswer(h, sess, snap.Round, answer)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "✅ 정답! 잘했어요!") {
		t.Error("expected correct feedback")
	}

	next, _ := svc.Snapshot(ctx, sess.ID)
	if next.Score != 1 || next.Attempts != 1 || next.Round != snap.Round+1 {
		t.Fatalf("after correct answer = %+v", next)
	}

	wantAnswer, _ := svc.Table().Reading(next.Question.Symbol)
	wrong := ""
	for _, opt := range next.Question.Options {
		if opt != wantAnswer {
			wrong = opt
			break
		}
	}

	rec = postAnswer(h, sess, next.Round, wrong)
	body := rec.Body.String()
	if !strings.Contains(body, "❌ 아쉬워요. 정답은 <b>"+wantAnswer+"</b> 입니다.") {
		t.Errorf("expected wrong feedback naming %q", wantAnswer)
	}
	if !strings.Contains(body, "점수: 1 / 시도: 2") {
		t.Error("expected updated score line")
	}
}

func TestToolsAnswerWithoutSelection(t *testing.T) {
	h, svc, sess := setupTools(t)
	ctx := context.Background()

	before, err := svc.Current(ctx, sess)
	if err != nil {
		t.Fatal(err)
	}

	rec := postAnswer(h, sess, before.Round, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), quizSelectNotice) {
		t.Error("expected the select notice")
	}

	after, _ := svc.Snapshot(ctx, sess.ID)
	if after.Attempts != 0 || after.Round != before.Round || after.Question.Symbol != before.Question.Symbol {
		t.Errorf("state changed: before %+v after %+v", before, after)
	}
}

func TestToolsAnswerStaleRound(t *testing.T) {
	h, svc, sess := setupTools(t)
	ctx := context.Background()

	snap, err := svc.Current(ctx, sess)
	if err != nil {
		t.Fatal(err)
	}

	rec := postAnswer(h, sess, snap.Round+5, snap.Question.Options[0])
	if !strings.Contains(rec.Body.String(), quizStaleNotice) {
		t.Error("expected the stale notice")
	}
	after, _ := svc.Snapshot(ctx, sess.ID)
	if after.Attempts != 0 {
		t.Errorf("stale answer was graded: %+v", after)
	}
}

func TestToolsSkipAndReset(t *testing.T) {
	h, svc, sess := setupTools(t)
	ctx := context.Background()

	snap, err := svc.Current(ctx, sess)
	if err != nil {
		t.Fatal(err)
	}
	postAnswer(h, sess, snap.Round, snap.Question.Options[0])

	form := url.Values{CSRFFormField: {sess.CSRFToken}}

	rec := httptest.NewRecorder()
	h.Skip(rec, withSession(newFormRequest(http.MethodPost, "/tools/quiz/skip", form), sess))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Skip status = %d, want 303", rec.Code)
	}
	skipped, _ := svc.Snapshot(ctx, sess.ID)
	if skipped.Attempts != 1 || skipped.Round != snap.Round+2 {
		t.Errorf("after skip = %+v", skipped)
	}

	rec = httptest.NewRecorder()
	h.Reset(rec, withSession(newFormRequest(http.MethodPost, "/tools/quiz/reset", form), sess))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/tools#quiz" {
		t.Fatalf("Reset response = %d %q", rec.Code, rec.Header().Get("Location"))
	}
	reset, _ := svc.Snapshot(ctx, sess.ID)
	if reset.Attempts != 0 || reset.Score != 0 || len(reset.History) != 0 {
		t.Errorf("after reset = %+v", reset)
	}
}

func TestToolsState(t *testing.T) {
	h, svc, sess := setupTools(t)
	ctx := context.Background()

	snap, err := svc.Current(ctx, sess)
	if err != nil {
		t.Fatal(err)
	}
	postAnswer(h, sess, snap.Round, snap.Question.Options[0])

	rec := httptest.NewRecorder()
	h.State(rec, withSession(httptest.NewRequest(http.MethodGet, "/tools/quiz/state", nil), sess))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got service.QuizSnapshot
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Attempts != 1 || len(got.History) != 1 || got.Question == nil {
		t.Errorf("state = %+v", got)
	}
	if got.History[0].Symbol != snap.Question.Symbol || got.History[0].Chosen != snap.Question.Options[0] {
		t.Errorf("history entry = %+v", got.History[0])
	}
}

func TestToolsCombine(t *testing.T) {
	h, _, sess := setupTools(t)

	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantBody   string
	}{
		{
			name:       "greeting with name",
			form:       url.Values{"situation": {"인사"}, "phrase": {"こんにちは"}, "name": {" 민지 "}},
			wantStatus: http.StatusOK,
			wantBody:   "こんにちは、민지さん！",
		},
		{
			name:       "thanks ignores name",
			form:       url.Values{"situation": {"감사"}, "phrase": {"ありがとう"}, "name": {"민지"}},
			wantStatus: http.StatusOK,
			wantBody:   "복사해서 친구에게 사용해 보세요!",
		},
		{
			name:       "phrase from another situation",
			form:       url.Values{"situation": {"감사"}, "phrase": {"すみません"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "선택한 상황에 맞는 표현을 골라 주세요.",
		},
		{
			name:       "unknown situation",
			form:       url.Values{"situation": {"없음"}, "phrase": {"すみません"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "상황을 골라 주세요.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.form.Set(CSRFFormField, sess.CSRFToken)
			rec := httptest.NewRecorder()
			h.Combine(rec, withSession(newFormRequest(http.MethodPost, "/tools/combine", tt.form), sess))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body is missing %q", tt.wantBody)
			}
		})
	}
}

func TestToolsVocabulary(t *testing.T) {
	h, _, sess := setupTools(t)

	rec := httptest.NewRecorder()
	h.Vocabulary(rec, withSession(httptest.NewRequest(http.MethodGet, "/tools/vocabulary.xlsx", nil), sess))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "vocabulary.xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 9 {
		t.Errorf("rows = %d, want header plus 8 words", len(rows))
	}
}
