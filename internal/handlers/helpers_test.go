package handlers

import (
	"context"
	"html/template"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"nihongoclass/internal/models"
	"nihongoclass/internal/quiz"
	"nihongoclass/internal/security"
	"nihongoclass/internal/service"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func loadTestTemplates(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := LoadTemplates(os.DirFS("../templates"))
	if err != nil {
		t.Fatalf("LoadTemplates() error = %v", err)
	}
	return tmpl
}

func newTestQuizService(seed int64) *service.QuizService {
	return service.NewQuizService(service.NewMemoryQuizStore(), quiz.Hiragana(), rand.New(rand.NewSource(seed)))
}

func newTestSession(t *testing.T) *models.BrowserSession {
	t.Helper()
	id := security.GenerateSessionID()
	token, err := security.NewCSRFGenerator(testKey).GenerateToken(id)
	if err != nil {
		t.Fatal(err)
	}
	return &models.BrowserSession{ID: id, ExpiresAt: time.Now().Add(time.Hour), CSRFToken: token}
}

func withSession(r *http.Request, sess *models.BrowserSession) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), SessionContextKey, sess))
}

func newFormRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
