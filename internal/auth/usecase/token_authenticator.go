package usecase

import (
	"context"
	"errors"
	"time"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	authService "github.com/allisson/authgate/internal/auth/service"
)

// TokenAuthenticator decides the validity of a single presented token.
//
// It holds no per-request state. An unknown token is answered only after a randomized delay
// so response latency does not reveal whether a guessed token exists. Known tokens, expired
// or not, are answered without a delay.
type TokenAuthenticator struct {
	delayer authService.Delayer
	now     func() time.Time
}

// NewTokenAuthenticator creates a TokenAuthenticator that waits on delayer for unknown tokens.
func NewTokenAuthenticator(delayer authService.Delayer) *TokenAuthenticator {
	return &TokenAuthenticator{
		delayer: delayer,
		now:     time.Now,
	}
}

// Evaluate classifies a presented token.
//
//   - not presented → OutcomeUnauthenticated, immediately
//   - unknown → OutcomeTokenInvalid, after the delay
//   - expiry set and not after now → OutcomeTokenExpired
//   - otherwise → OutcomeAuthenticated with the token's identity
//
// The returned error is non-nil only when the store itself fails.
func (a *TokenAuthenticator) Evaluate(
	ctx context.Context,
	token string,
	present bool,
	store TokenStore,
) (authDomain.Outcome, error) {
	if !present {
		return authDomain.Unauthenticated(), nil
	}

	stored, err := a.find(ctx, token, store)
	if err != nil {
		return authDomain.Outcome{}, err
	}

	if stored == nil {
		a.delayer.Delay()
		return authDomain.TokenInvalid(), nil
	}

	if stored.IsExpired(a.now().UTC()) {
		return authDomain.TokenExpired(), nil
	}

	return authDomain.Authenticated(stored.Identity), nil
}

// Lookup returns the identity of a known, unexpired token, or nil.
// Unlike Evaluate it never delays, so it is only for requests that were already gated.
func (a *TokenAuthenticator) Lookup(
	ctx context.Context,
	token string,
	store TokenStore,
) (*authDomain.Identity, error) {
	stored, err := a.find(ctx, token, store)
	if err != nil || stored == nil {
		return nil, err
	}

	if stored.IsExpired(a.now().UTC()) {
		return nil, nil
	}

	identity := stored.Identity
	return &identity, nil
}

// find maps ErrTokenNotFound to a nil token.
func (a *TokenAuthenticator) find(
	ctx context.Context,
	token string,
	store TokenStore,
) (*authDomain.StoredToken, error) {
	stored, err := store.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, authDomain.ErrTokenNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return stored, nil
}
