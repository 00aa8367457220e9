// Package usecase defines the authentication decision logic and the capabilities it consumes.
package usecase

import (
	"context"
	"net/http"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	userDomain "github.com/allisson/authgate/internal/user/domain"
)

// SessionAuthority reports whether a request carries an interactive session and whose it is.
// Implementations are read-only and safe for concurrent use.
type SessionAuthority interface {
	// IsSessionAuthenticated reports whether the request belongs to a live session.
	IsSessionAuthenticated(r *http.Request) (bool, error)

	// SessionIdentity returns the session's identity, or nil when there is no live session.
	SessionIdentity(r *http.Request) (*authDomain.Identity, error)
}

// TokenStore looks up bearer tokens by their plain value.
type TokenStore interface {
	// FindByToken returns the non-revoked token matching plainToken.
	// Returns ErrTokenNotFound when there is none.
	FindByToken(ctx context.Context, plainToken string) (*authDomain.StoredToken, error)
}

// TokenRepository defines persistence operations for bearer tokens.
type TokenRepository interface {
	// Create stores a new token.
	Create(ctx context.Context, token *authDomain.Token) error

	// GetByTokenHash returns the non-revoked token with the given hash.
	// Returns ErrTokenNotFound if there is none.
	GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.StoredToken, error)
}

// UserRepository is the subset of user persistence needed to issue tokens.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
}

// AuthResolver answers "is this request authenticated?" and "who is the caller?".
// It is the only layer that turns token outcomes into caller-visible errors.
type AuthResolver interface {
	// IsAuthenticated checks the session first, then the presented token.
	// Returns (false, ErrAuthTokenExpired) for an expired token and
	// (false, ErrAuthTokenInvalid) for a missing or unknown one.
	// Any other error is an infrastructure fault.
	IsAuthenticated(r *http.Request) (bool, error)

	// CurrentIdentity returns the session identity if there is one, otherwise the identity
	// of a known, unexpired token, otherwise nil. It never applies the unknown-token delay,
	// so it must only be called once the request has been gated by IsAuthenticated.
	CurrentIdentity(r *http.Request) (*authDomain.Identity, error)
}

// TokenUseCase issues bearer tokens to users.
type TokenUseCase interface {
	Issue(ctx context.Context, input *authDomain.IssueTokenInput) (*authDomain.IssueTokenOutput, error)
}
