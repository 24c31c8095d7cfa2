package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nihongoclass/internal/models"
	"nihongoclass/internal/quiz"
)

// ErrStaleQuestion is returned when an answer refers to a question that is no
// longer current, e.g. a double-submitted form.
var ErrStaleQuestion = errors.New("question is no longer current")

// QuizSnapshot is a read-only view of a session's quiz progress
type QuizSnapshot struct {
	Question *quiz.Question      `json:"question"`
	Round    int                 `json:"round"`
	Score    int                 `json:"score"`
	Attempts int                 `json:"attempts"`
	History  []quiz.HistoryEntry `json:"history"`
}

func snapshotOf(s *quiz.State) QuizSnapshot {
	snap := QuizSnapshot{
		Round:    s.Round,
		Score:    s.Score(),
		Attempts: s.AttemptCount(),
		History:  s.Entries(),
	}
	if s.Current != nil {
		q := *s.Current
		snap.Question = &q
	}
	return snap
}

// QuizService runs the kana quiz for browser sessions
type QuizService struct {
	store QuizStore
	table *quiz.SymbolTable
	rnd   quiz.Random
}

// NewQuizService creates a new quiz service
func NewQuizService(store QuizStore, table *quiz.SymbolTable, rnd quiz.Random) *QuizService {
	if rnd == nil {
		rnd = quiz.DefaultRandom()
	}
	return &QuizService{store: store, table: table, rnd: rnd}
}

// Table returns the symbol table the quiz draws from
func (s *QuizService) Table() *quiz.SymbolTable {
	return s.table
}

// Current returns the session's progress, drawing a first question if needed.
func (s *QuizService) Current(ctx context.Context, sess *models.BrowserSession) (QuizSnapshot, error) {
	var snap QuizSnapshot
	err := s.store.Update(ctx, sess.ID, sess.ExpiresAt, func(state *quiz.State) error {
		if state.Current == nil {
			quiz.Draw(state, s.table, s.rnd)
		}
		snap = snapshotOf(state)
		return nil
	})
	if err != nil {
		return QuizSnapshot{}, fmt.Errorf("failed to load quiz: %w", err)
	}
	return snap, nil
}

// Answer grades chosen for the question shown in round and advances to the
// next question. quiz.ErrSelectionRequired and ErrStaleQuestion leave the
// session unchanged.
func (s *QuizService) Answer(ctx context.Context, sess *models.BrowserSession, round int, chosen string) (quiz.Result, error) {
	var result quiz.Result
	err := s.store.Update(ctx, sess.ID, sess.ExpiresAt, func(state *quiz.State) error {
		if chosen == quiz.NoSelection {
			return quiz.ErrSelectionRequired
		}
		if state.Current == nil || state.Round != round {
			return ErrStaleQuestion
		}
		if !state.Current.HasOption(chosen) {
			log.Printf("Quiz answer %q is not among the options for %s", chosen, state.Current.Symbol)
		}

		var err error
		result, err = quiz.Submit(state, s.table, s.rnd, chosen)
		return err
	})
	return result, err
}

// Skip replaces the current question without grading it
func (s *QuizService) Skip(ctx context.Context, sess *models.BrowserSession) error {
	return s.store.Update(ctx, sess.ID, sess.ExpiresAt, func(state *quiz.State) error {
		quiz.Draw(state, s.table, s.rnd)
		return nil
	})
}

// Reset clears score and history and starts over with a new question
func (s *QuizService) Reset(ctx context.Context, sess *models.BrowserSession) error {
	return s.store.Update(ctx, sess.ID, sess.ExpiresAt, func(state *quiz.State) error {
		round := state.Round
		*state = *quiz.NewState()
		// keep counting rounds so forms from before the reset stay stale
		state.Round = round
		quiz.Draw(state, s.table, s.rnd)
		return nil
	})
}

// Snapshot returns the session's progress without changing it
func (s *QuizService) Snapshot(ctx context.Context, sessionID string) (QuizSnapshot, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return QuizSnapshot{}, err
	}
	if state == nil {
		state = quiz.NewState()
	}
	return snapshotOf(state), nil
}

// EndSession discards a session's quiz progress
func (s *QuizService) EndSession(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// CleanupExpiredSessions removes the progress of every expired session
func (s *QuizService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	return s.store.DeleteExpired(ctx)
}
