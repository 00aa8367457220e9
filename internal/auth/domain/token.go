package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token is a persisted bearer token. Only the SHA-256 hash of the plain token is stored.
type Token struct {
	ID        uuid.UUID
	TokenHash string
	UserID    uuid.UUID
	ExpiresAt *time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// StoredToken is the read view of a non-revoked token: who it belongs to and when it expires.
// A nil ExpiresAt means the token never expires.
type StoredToken struct {
	Identity  Identity
	ExpiresAt *time.Time
}

// IsExpired reports whether the token's expiry is set and not after now.
func (s *StoredToken) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && !s.ExpiresAt.After(now)
}

// IssueTokenInput contains the parameters for issuing a token to a user.
type IssueTokenInput struct {
	Username string
	// TTL is the token lifetime. Zero falls back to the configured default.
	TTL time.Duration
	// NoExpiry issues a token that never expires, ignoring TTL.
	NoExpiry bool
}

// IssueTokenOutput contains the plain token. It is shown once and never stored.
type IssueTokenOutput struct {
	PlainToken string
	UserID     uuid.UUID
	ExpiresAt  *time.Time
}
