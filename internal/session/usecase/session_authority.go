package usecase

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	sessionDomain "github.com/allisson/authgate/internal/session/domain"
)

// DefaultCookieName is the session cookie read when none is configured.
const DefaultCookieName = "session_id"

// SessionAuthority resolves the session cookie of a request against a SessionRepository.
// A missing, malformed, unknown or expired session cookie means "no session" and is not an error.
type SessionAuthority struct {
	repo       SessionRepository
	cookieName string
	logger     *slog.Logger
	now        func() time.Time
}

// NewSessionAuthority creates a SessionAuthority reading the cookie named cookieName.
func NewSessionAuthority(repo SessionRepository, cookieName string, logger *slog.Logger) *SessionAuthority {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &SessionAuthority{
		repo:       repo,
		cookieName: cookieName,
		logger:     logger,
		now:        time.Now,
	}
}

// IsSessionAuthenticated reports whether the request carries a live session.
func (s *SessionAuthority) IsSessionAuthenticated(r *http.Request) (bool, error) {
	session, err := s.current(r)
	if err != nil {
		return false, err
	}
	return session != nil, nil
}

// SessionIdentity returns the identity of the request's live session, or nil.
func (s *SessionAuthority) SessionIdentity(r *http.Request) (*authDomain.Identity, error) {
	session, err := s.current(r)
	if err != nil || session == nil {
		return nil, err
	}
	return session.Identity(), nil
}

func (s *SessionAuthority) current(r *http.Request) (*sessionDomain.Session, error) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return nil, nil
	}

	sessionID, err := uuid.Parse(cookie.Value)
	if err != nil {
		s.logger.Debug("ignoring malformed session cookie")
		return nil, nil
	}

	session, err := s.repo.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, sessionDomain.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !session.IsValid(s.now().UTC()) {
		return nil, nil
	}

	return session, nil
}
