package models

import "time"

// ContactMessage is a question sent from the FAQ page
type ContactMessage struct {
	Name        string
	Message     string
	RemoteAddr  string
	SubmittedAt time.Time
}
