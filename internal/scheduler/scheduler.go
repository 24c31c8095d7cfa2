package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// SessionCleaner removes quiz progress of expired sessions
type SessionCleaner interface {
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

// VisitorCleaner forgets rate limiter entries whose window has passed
type VisitorCleaner interface {
	Cleanup() int
}

// Scheduler runs periodic housekeeping for the site
type Scheduler struct {
	scheduler *gocron.Scheduler
	sessions  SessionCleaner
	visitors  VisitorCleaner
	timeout   time.Duration
}

// New creates a new scheduler instance. visitors may be nil.
func New(sessions SessionCleaner, visitors VisitorCleaner) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		sessions:  sessions,
		visitors:  visitors,
		timeout:   time.Minute,
	}
}

// Start schedules the hourly sweep and runs it in the background
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(1).Hour().Do(s.sweep); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	removed, err := s.sessions.CleanupExpiredSessions(ctx)
	if err != nil {
		log.Printf("Error cleaning up expired quiz sessions: %v", err)
	} else if removed > 0 {
		log.Printf("Removed %d expired quiz sessions", removed)
	}

	if s.visitors != nil {
		if n := s.visitors.Cleanup(); n > 0 {
			log.Printf("Forgot %d idle rate limit entries", n)
		}
	}
}
