// Package http provides HTTP middleware and handlers for request authentication.
package http

import (
	"context"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
)

// identityKey is a context key type for storing the authenticated identity.
type identityKey struct{}

// WithIdentity stores the authenticated identity in the context.
// This is called by AuthenticationMiddleware once the request has been authenticated.
func WithIdentity(ctx context.Context, identity *authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the authenticated identity from the context.
// Returns (nil, false) if no identity was set.
func GetIdentity(ctx context.Context) (*authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.Identity)
	return identity, ok && identity != nil
}
