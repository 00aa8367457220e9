// Package usecase exposes interactive sessions as an authentication strategy.
package usecase

import (
	"context"

	"github.com/google/uuid"

	sessionDomain "github.com/allisson/authgate/internal/session/domain"
)

// SessionRepository reads sessions by id.
type SessionRepository interface {
	// Get returns the session with the given id, or ErrSessionNotFound.
	Get(ctx context.Context, sessionID uuid.UUID) (*sessionDomain.Session, error)
}
