package usecase

import (
	"log/slog"
	"net/http"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
)

// authResolver combines the session and token strategies.
// The session is always consulted first; the token path is reached only without a session.
type authResolver struct {
	sessions      SessionAuthority
	tokens        TokenStore
	authenticator *TokenAuthenticator
	logger        *slog.Logger
}

// NewAuthResolver creates an AuthResolver. A nil sessions disables the session strategy.
func NewAuthResolver(
	sessions SessionAuthority,
	tokens TokenStore,
	authenticator *TokenAuthenticator,
	logger *slog.Logger,
) AuthResolver {
	return &authResolver{
		sessions:      sessions,
		tokens:        tokens,
		authenticator: authenticator,
		logger:        logger,
	}
}

// IsAuthenticated implements AuthResolver.
//
// Both "no token" and "unknown token" produce ErrAuthTokenInvalid so callers cannot tell
// them apart by the response. Only the unknown-token case is delayed.
func (a *authResolver) IsAuthenticated(r *http.Request) (bool, error) {
	hasSession, err := a.hasSession(r)
	if err != nil {
		return false, err
	}
	if hasSession {
		a.logger.Debug("request authenticated", slog.String("source", "session"))
		return true, nil
	}

	token, present := ExtractToken(r)
	outcome, err := a.authenticator.Evaluate(r.Context(), token, present, a.tokens)
	if err != nil {
		return false, err
	}

	switch outcome.Kind {
	case authDomain.OutcomeAuthenticated:
		a.logger.Debug("request authenticated",
			slog.String("source", "token"),
			slog.String("user_id", outcome.Identity.UserID.String()))
		return true, nil
	case authDomain.OutcomeTokenExpired:
		a.logger.Debug("authentication failed", slog.String("outcome", outcome.Kind.String()))
		return false, authDomain.ErrAuthTokenExpired
	default:
		a.logger.Debug("authentication failed", slog.String("outcome", outcome.Kind.String()))
		return false, authDomain.ErrAuthTokenInvalid
	}
}

// CurrentIdentity implements AuthResolver. A session wins over any token on the same request.
// A session that vanished after the check falls through to the token.
func (a *authResolver) CurrentIdentity(r *http.Request) (*authDomain.Identity, error) {
	hasSession, err := a.hasSession(r)
	if err != nil {
		return nil, err
	}
	if hasSession {
		identity, err := a.sessions.SessionIdentity(r)
		if err != nil || identity != nil {
			return identity, err
		}
	}

	token, present := ExtractToken(r)
	if !present {
		return nil, nil
	}
	return a.authenticator.Lookup(r.Context(), token, a.tokens)
}

func (a *authResolver) hasSession(r *http.Request) (bool, error) {
	if a.sessions == nil {
		return false, nil
	}
	return a.sessions.IsSessionAuthenticated(r)
}
