package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
)

// countingDelayer records delay calls without sleeping.
type countingDelayer struct {
	calls atomic.Int32
}

func (d *countingDelayer) Delay() time.Duration {
	d.calls.Add(1)
	return 0
}

// memoryTokenStore is a TokenStore backed by a map of plain token to stored token.
type memoryTokenStore struct {
	tokens map[string]*authDomain.StoredToken
	err    error
}

func (s *memoryTokenStore) FindByToken(_ context.Context, plainToken string) (*authDomain.StoredToken, error) {
	if s.err != nil {
		return nil, s.err
	}
	stored, ok := s.tokens[plainToken]
	if !ok {
		return nil, authDomain.ErrTokenNotFound
	}
	return stored, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// fixtureStore mirrors the token fixtures used across the resolver tests:
// abc123 never expires in practice, expired123 expired long ago, forever has no expiry.
func fixtureStore() (*memoryTokenStore, authDomain.Identity) {
	identity := authDomain.Identity{UserID: uuid.New(), Username: "alice"}
	return &memoryTokenStore{
		tokens: map[string]*authDomain.StoredToken{
			"abc123": {
				Identity:  identity,
				ExpiresAt: timePtr(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)),
			},
			"expired123": {
				Identity:  identity,
				ExpiresAt: timePtr(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)),
			},
			"forever": {
				Identity: identity,
			},
		},
	}, identity
}
