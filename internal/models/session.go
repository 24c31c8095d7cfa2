package models

import "time"

// QuizSession is a browser session together with its quiz progress
type QuizSession struct {
	ID        string
	StateJSON string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired checks if the session has expired
func (s *QuizSession) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// BrowserSession identifies the visitor a request belongs to
type BrowserSession struct {
	ID        string
	ExpiresAt time.Time
	CSRFToken string
	IsNew     bool
}
