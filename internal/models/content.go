package models

// Level is one row of the language course overview
type Level struct {
	Name       string
	Goals      string
	Assessment string
}

// CultureTheme is one row of the culture course overview
type CultureTheme struct {
	Theme      string
	Activities string
}

// CalendarMonth is the main topic for a month of the school year
type CalendarMonth struct {
	Month int
	Topic string
}

// Event is a highlighted school event
type Event struct {
	When        string
	Description string
}

// DayPhrase is a Japanese phrase shown on the home page with its meaning
type DayPhrase struct {
	Japanese string
	Meaning  string
}

// PhraseGroup is a situation and the phrases that fit it
type PhraseGroup struct {
	Situation string
	Phrases   []string
	// Personal groups accept a name suffix ("、{name}さん！").
	Personal bool
}

// VocabWord is one row of the mini vocabulary table
type VocabWord struct {
	Japanese      string
	Korean        string
	Pronunciation string
}

// FAQItem is a question and answer pair
type FAQItem struct {
	Question string
	Answer   string
}

// Highlight is a card on the home page
type Highlight struct {
	Emoji    string
	Title    string
	Subtitle string
}

// InfoCard is a titled bullet list
type InfoCard struct {
	Title string
	Items []string
}
