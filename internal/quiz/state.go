package quiz

import (
	"errors"
	"time"
)

// NoSelection is submitted when the learner picked no option.
const NoSelection = ""

var (
	ErrSelectionRequired = errors.New("selection required")
	ErrNoQuestion        = errors.New("no question to answer")
)

// HistoryEntry records one graded submission
type HistoryEntry struct {
	Symbol   string    `json:"symbol"`
	Chosen   string    `json:"chosen"`
	Answer   string    `json:"answer"`
	Correct  bool      `json:"correct"`
	GradedAt time.Time `json:"graded_at"`
}

// Result is returned from a graded submission.
type Result struct {
	Symbol  string
	Chosen  string
	Answer  string
	Correct bool
}

// State is the quiz progress of a single session. It is owned by exactly one
// session and must not be shared between sessions.
type State struct {
	Current  *Question      `json:"current,omitempty"`
	Points   int            `json:"score"`
	Attempts int            `json:"attempts"`
	History  []HistoryEntry `json:"history"`
	Round    int            `json:"round"`
}

// NewState returns a state with no question and a zero score
func NewState() *State {
	return &State{History: []HistoryEntry{}}
}

// Score returns the number of correct answers.
func (s *State) Score() int {
	return s.Points
}

// AttemptCount returns the number of graded submissions.
func (s *State) AttemptCount() int {
	return s.Attempts
}

// Entries returns a copy of the submission history, oldest first.
func (s *State) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(s.History))
	copy(out, s.History)
	return out
}

// Draw replaces the current question with a fresh one. An unanswered
// question is dropped without penalty.
func Draw(s *State, table *SymbolTable, rnd Random) Question {
	q := NewQuestion(table, rnd)
	s.Current = &q
	s.Round++
	return q
}

// Submit grades chosen against the current question, records it and draws
// the next question. Rejected submissions leave the state untouched.
func Submit(s *State, table *SymbolTable, rnd Random, chosen string) (Result, error) {
	if chosen == NoSelection {
		return Result{}, ErrSelectionRequired
	}
	if s.Current == nil {
		return Result{}, ErrNoQuestion
	}

	symbol := s.Current.Symbol
	answer, _ := table.Reading(symbol)
	correct := chosen == answer

	s.Attempts++
	if correct {
		s.Points++
	}
	s.History = append(s.History, HistoryEntry{
		Symbol:   symbol,
		Chosen:   chosen,
		Answer:   answer,
		Correct:  correct,
		GradedAt: time.Now().UTC(),
	})

	Draw(s, table, rnd)

	return Result{Symbol: symbol, Chosen: chosen, Answer: answer, Correct: correct}, nil
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	if s.Current != nil {
		q := Question{Symbol: s.Current.Symbol, Options: append([]string(nil), s.Current.Options...)}
		c.Current = &q
	}
	c.History = append(make([]HistoryEntry, 0, len(s.History)), s.History...)
	return &c
}
