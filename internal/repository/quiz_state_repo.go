package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nihongoclass/internal/database"
	"nihongoclass/internal/models"
	"nihongoclass/internal/quiz"
)

// QuizStateRepository keeps quiz sessions in the quiz_sessions table so that
// several server replicas can serve the same browser session
type QuizStateRepository struct {
	db  *database.DB
	now func() time.Time
}

// NewQuizStateRepository creates a new quiz state repository
func NewQuizStateRepository(db *database.DB) *QuizStateRepository {
	return &QuizStateRepository{db: db, now: time.Now}
}

// Update loads the state for sessionID, applies fn and saves the result in a
// single transaction. A missing or expired row starts from a fresh state.
// When fn returns an error nothing is written.
func (r *QuizStateRepository) Update(ctx context.Context, sessionID string, expiresAt time.Time, fn func(*quiz.State) error) error {
	return r.db.WithTx(ctx, func(tx *database.Tx) error {
		row, err := r.getSession(ctx, tx, sessionID, true)
		if err != nil {
			return err
		}

		now := r.now().UTC()
		state := quiz.NewState()
		createdAt := now
		if row != nil && !row.IsExpired() {
			if err := json.Unmarshal([]byte(row.StateJSON), state); err != nil {
				return fmt.Errorf("failed to decode quiz state %s: %w", sessionID, err)
			}
			createdAt = row.CreatedAt
		}

		if err := fn(state); err != nil {
			return err
		}

		data, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("failed to encode quiz state: %w", err)
		}

		_, err = tx.ExecContext(ctx, tx.GetDialect().UpsertQuizSessionQuery(),
			sessionID, string(data), expiresAt.UTC(), createdAt.UTC(), now)
		if err != nil {
			return fmt.Errorf("failed to save quiz session: %w", err)
		}
		return nil
	})
}

// Load returns the state for sessionID, or nil if there is no live session
func (r *QuizStateRepository) Load(ctx context.Context, sessionID string) (*quiz.State, error) {
	row, err := r.getSession(ctx, r.db, sessionID, false)
	if err != nil || row == nil || row.IsExpired() {
		return nil, err
	}

	state := quiz.NewState()
	if err := json.Unmarshal([]byte(row.StateJSON), state); err != nil {
		return nil, fmt.Errorf("failed to decode quiz state %s: %w", sessionID, err)
	}
	return state, nil
}

// Delete removes a session
func (r *QuizStateRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM quiz_sessions WHERE id = ?`, sessionID)
	return err
}

// DeleteExpired removes every expired session and returns how many were removed
func (r *QuizStateRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM quiz_sessions WHERE expires_at < ?`, r.now().UTC())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *QuizStateRepository) getSession(ctx context.Context, q database.DBTX, sessionID string, lock bool) (*models.QuizSession, error) {
	query := `
		SELECT id, state_json, expires_at, created_at, updated_at
		FROM quiz_sessions
		WHERE id = ?`
	if lock {
		query += q.GetDialect().LockRowSuffix()
	}

	session := &models.QuizSession{}
	err := q.QueryRowContext(ctx, query, sessionID).Scan(
		&session.ID,
		&session.StateJSON,
		&session.ExpiresAt,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz session: %w", err)
	}
	return session, nil
}
