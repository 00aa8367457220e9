// Package domain defines interactive login sessions as seen by the authentication layer.
package domain

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	"github.com/allisson/authgate/internal/errors"
)

// Session is an interactive login. Sessions are created by the login subsystem; this
// service only reads them to decide whether a request is already authenticated.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValid reports whether the session is still live at now.
func (s *Session) IsValid(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

// Identity returns the user the session belongs to.
func (s *Session) Identity() *authDomain.Identity {
	return &authDomain.Identity{UserID: s.UserID, Username: s.Username}
}

// ErrSessionNotFound indicates there is no session with the requested id.
var ErrSessionNotFound = errors.Wrap(errors.ErrNotFound, "session not found")
