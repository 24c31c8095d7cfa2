package handlers

import (
	"html/template"
	"net/http"
	"time"

	"nihongoclass/internal/content"
)

// PageHandler serves the informational pages of the site
type PageHandler struct {
	templates *template.Template
	now       func() time.Time
}

// NewPageHandler creates a new page handler
func NewPageHandler(templates *template.Template) *PageHandler {
	return &PageHandler{templates: templates, now: time.Now}
}

func newPage(r *http.Request, title, active string) Page {
	p := Page{
		Title:     title + " - " + content.SiteTitle,
		SiteTitle: content.SiteTitle,
		Active:    active,
	}
	if sess := GetSessionFromContext(r.Context()); sess != nil {
		p.CSRFToken = sess.CSRFToken
	}
	return p
}

// Home shows the hero, highlight cards and the phrase of the day
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	render(w, h.templates, "home.tmpl", http.StatusOK, HomeViewData{
		Page:       newPage(r, "홈", "home"),
		Highlights: content.Highlights,
		Phrase:     content.PhraseOfTheDay(h.now()),
	})
}

func (h *PageHandler) Why(w http.ResponseWriter, r *http.Request) {
	render(w, h.templates, "why.tmpl", http.StatusOK, WhyViewData{
		Page:  newPage(r, "왜 일본어?", "why"),
		Cards: content.WhyCards,
	})
}

func (h *PageHandler) Courses(w http.ResponseWriter, r *http.Request) {
	render(w, h.templates, "courses.tmpl", http.StatusOK, CoursesViewData{
		Page:           newPage(r, "과목 소개", "courses"),
		Levels:         content.Levels,
		KeyExpressions: content.KeyExpressions,
		CultureThemes:  content.CultureThemes,
	})
}

func (h *PageHandler) Activities(w http.ResponseWriter, r *http.Request) {
	render(w, h.templates, "activities.tmpl", http.StatusOK, ActivitiesViewData{
		Page:       newPage(r, "수업 활동", "activities"),
		Activities: content.Activities,
	})
}

func (h *PageHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	render(w, h.templates, "calendar.tmpl", http.StatusOK, CalendarViewData{
		Page:   newPage(r, "행사·캘린더", "calendar"),
		Months: content.Calendar,
		Events: content.Events,
	})
}

// FAQ shows the questions and an empty contact form
func (h *PageHandler) FAQ(w http.ResponseWriter, r *http.Request) {
	render(w, h.templates, "faq.tmpl", http.StatusOK, newFAQView(r))
}

func newFAQView(r *http.Request) FAQViewData {
	return FAQViewData{
		Page:  newPage(r, "FAQ & 문의", "faq"),
		Items: content.FAQ,
	}
}
