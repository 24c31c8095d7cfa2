package handlers

import (
	"nihongoclass/internal/models"
	"nihongoclass/internal/service"
)

// Page carries what the shared layout needs
type Page struct {
	Title     string
	SiteTitle string
	Active    string
	CSRFToken string
}

type HomeViewData struct {
	Page
	Highlights []models.Highlight
	Phrase     models.DayPhrase
}

type WhyViewData struct {
	Page
	Cards []models.InfoCard
}

type CoursesViewData struct {
	Page
	Levels         []models.Level
	KeyExpressions []string
	CultureThemes  []models.CultureTheme
}

type ActivitiesViewData struct {
	Page
	Activities []models.InfoCard
}

type CalendarViewData struct {
	Page
	Months []models.CalendarMonth
	Events []models.Event
}

type ContactForm struct {
	Name    string
	Message string
}

type FAQViewData struct {
	Page
	Items   []models.FAQItem
	Form    ContactForm
	Success string
	Error   string
}

// QuizFeedback is the message shown after a quiz submission
type QuizFeedback struct {
	Warning string
	Correct bool
	Answer  string
}

type CombinerForm struct {
	Situation string
	Phrase    string
	Name      string
	Result    string
	Error     string
}

type ToolsViewData struct {
	Page
	Quiz       service.QuizSnapshot
	Feedback   *QuizFeedback
	Groups     []models.PhraseGroup
	Combiner   CombinerForm
	Vocabulary []models.VocabWord
}
