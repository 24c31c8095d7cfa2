package service

import (
	"context"
	"sync"
	"time"

	"nihongoclass/internal/quiz"
)

// QuizStore keeps one quiz.State per browser session.
// Update is the only writer: implementations serialize calls for the same
// session and discard the changes made by fn when it returns an error.
type QuizStore interface {
	Update(ctx context.Context, sessionID string, expiresAt time.Time, fn func(*quiz.State) error) error
	Load(ctx context.Context, sessionID string) (*quiz.State, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type memoryEntry struct {
	state     *quiz.State
	expiresAt time.Time
}

// MemoryQuizStore keeps sessions in process memory. Sessions are lost on
// restart and are not shared between replicas.
type MemoryQuizStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	now      func() time.Time
}

// NewMemoryQuizStore creates an empty in-memory store
func NewMemoryQuizStore() *MemoryQuizStore {
	return &MemoryQuizStore{
		sessions: make(map[string]*memoryEntry),
		now:      time.Now,
	}
}

func (m *MemoryQuizStore) Update(ctx context.Context, sessionID string, expiresAt time.Time, fn func(*quiz.State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	state := quiz.NewState()
	if e, ok := m.sessions[sessionID]; ok && m.now().Before(e.expiresAt) {
		state = e.state.Clone()
	}

	if err := fn(state); err != nil {
		return err
	}

	m.sessions[sessionID] = &memoryEntry{state: state, expiresAt: expiresAt}
	return nil
}

func (m *MemoryQuizStore) Load(ctx context.Context, sessionID string) (*quiz.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[sessionID]
	if !ok || !m.now().Before(e.expiresAt) {
		return nil, nil
	}
	return e.state.Clone(), nil
}

func (m *MemoryQuizStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func (m *MemoryQuizStore) DeleteExpired(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var removed int64
	for id, e := range m.sessions {
		if !now.Before(e.expiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}
