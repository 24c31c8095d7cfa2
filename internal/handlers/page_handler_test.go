package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestPages(t *testing.T) {
	h := NewPageHandler(loadTestTemplates(t))
	h.now = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }
	sess := newTestSession(t)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    []string
	}{
		{"home", h.Home, []string{"고2 일본어 & 일본문화 과목 안내", "실전 회화", "JLPT N3~N2", "失礼いたします"}},
		{"why", h.Why, []string{"왜 일본어를 배울까요?", "학습 장점", "통번역·국제교류·해외대학 진학"}},
		{"courses", h.Courses, []string{"일본어(제2외국어)", "심화·진로 연계(고2)", "사계절 문화", "志望動機は〜です"}},
		{"activities", h.Activities, []string{"롤플레이", "온라인 국제교류"}},
		{"calendar", h.Calendar, []string{"3월", "12월", "포트폴리오·말하기 종합 평가", "일본어 면접·스피치 챌린지"}},
		{"faq", h.FAQ, []string{"일본어가 처음인데 따라갈 수 있나요?", `name="csrf_token" value="` + sess.CSRFToken + `"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, withSession(httptest.NewRequest(http.MethodGet, "/", nil), sess))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q", ct)
			}
			body := rec.Body.String()
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("body is missing %q", want)
				}
			}
		})
	}
}

func TestNavMarksActivePage(t *testing.T) {
	h := NewPageHandler(loadTestTemplates(t))

	rec := httptest.NewRecorder()
	h.Calendar(rec, withSession(httptest.NewRequest(http.MethodGet, "/calendar", nil), newTestSession(t)))

	if !strings.Contains(rec.Body.String(), `<a href="/calendar" class="active">`) {
		t.Error("calendar link should be marked active")
	}
	if strings.Contains(rec.Body.String(), `<a href="/faq" class="active">`) {
		t.Error("faq link should not be marked active")
	}
}
