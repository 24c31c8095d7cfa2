package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"nihongoclass/internal/models"
	"nihongoclass/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const SessionContextKey ContextKey = "session"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokens          *security.SessionTokens
	csrf            *security.CSRFGenerator
	limiter         *security.RateLimiter
	sessionDuration time.Duration
	now             func() time.Time
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokens *security.SessionTokens, csrf *security.CSRFGenerator, limiter *security.RateLimiter, sessionDuration time.Duration) *Middleware {
	return &Middleware{
		tokens:          tokens,
		csrf:            csrf,
		limiter:         limiter,
		sessionDuration: sessionDuration,
		now:             time.Now,
	}
}

// WithSession attaches the visitor's browser session to the request,
// starting a new one when the cookie is missing, invalid or expired.
// Sessions past half their lifetime get a refreshed cookie.
func (m *Middleware) WithSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := m.now()
		sess := m.readSession(r)

		switch {
		case sess == nil:
			sess = &models.BrowserSession{
				ID:        security.GenerateSessionID(),
				ExpiresAt: now.Add(m.sessionDuration),
				IsNew:     true,
			}
			if err := m.setSessionCookie(w, r, sess); err != nil {
				respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error issuing session", err)
				return
			}
		case sess.ExpiresAt.Sub(now) < m.sessionDuration/2:
			sess.ExpiresAt = now.Add(m.sessionDuration)
			if err := m.setSessionCookie(w, r, sess); err != nil {
				log.Printf("Error refreshing session %s: %v", sess.ID, err)
			}
		}

		token, err := m.csrf.GenerateToken(sess.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error generating CSRF token", err)
			return
		}
		sess.CSRFToken = token

		ctx := context.WithValue(r.Context(), SessionContextKey, sess)
		next(w, r.WithContext(ctx))
	}
}

func (m *Middleware) readSession(r *http.Request) *models.BrowserSession {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	id, expiresAt, err := m.tokens.Parse(cookie.Value)
	if err != nil {
		return nil
	}
	return &models.BrowserSession{ID: id, ExpiresAt: expiresAt}
}

func (m *Middleware) setSessionCookie(w http.ResponseWriter, r *http.Request, sess *models.BrowserSession) error {
	token, err := m.tokens.Issue(sess.ID, sess.ExpiresAt)
	if err != nil {
		return err
	}
	http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, token, sess.ExpiresAt))
	return nil
}

// CSRFProtect rejects state-changing requests without the session's CSRF token.
// It must run inside WithSession.
func (m *Middleware) CSRFProtect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := GetSessionFromContext(r.Context())
		if sess == nil {
			http.Error(w, ErrInvalidCSRFToken, http.StatusForbidden)
			return
		}

		token := r.Header.Get(CSRFHeader)
		if token == "" {
			token = r.FormValue(CSRFFormField)
		}
		if sess.IsNew || !m.csrf.ValidateToken(sess.ID, token) {
			log.Printf("CSRF validation failed for %s %s from %s", r.Method, r.URL.Path, security.GetClientIP(r))
			http.Error(w, ErrInvalidCSRFToken, http.StatusForbidden)
			return
		}

		next(w, r)
	}
}

// RateLimit limits how often one client may call the wrapped handler
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.limiter.Allow(ip) {
			log.Printf("Rate limit exceeded for %s on %s", ip, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, ErrTooManyRequests, http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetSessionFromContext retrieves the browser session from the request context
func GetSessionFromContext(ctx context.Context) *models.BrowserSession {
	sess, ok := ctx.Value(SessionContextKey).(*models.BrowserSession)
	if !ok {
		return nil
	}
	return sess
}
