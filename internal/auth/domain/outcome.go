package domain

// OutcomeKind tags the result of evaluating a presented token.
type OutcomeKind int

const (
	// OutcomeUnauthenticated means no token was presented.
	OutcomeUnauthenticated OutcomeKind = iota
	// OutcomeAuthenticated means the token is known and not expired.
	OutcomeAuthenticated
	// OutcomeTokenExpired means the token is known but its expiry has passed.
	OutcomeTokenExpired
	// OutcomeTokenInvalid means the token is not known to the store.
	OutcomeTokenInvalid
)

// String returns the label used in logs and metrics.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeUnauthenticated:
		return "unauthenticated"
	case OutcomeAuthenticated:
		return "authenticated"
	case OutcomeTokenExpired:
		return "token_expired"
	case OutcomeTokenInvalid:
		return "token_invalid"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of a token check. Identity is set only for OutcomeAuthenticated.
type Outcome struct {
	Kind     OutcomeKind
	Identity *Identity
}

// Authenticated builds an OutcomeAuthenticated carrying the identity.
func Authenticated(identity Identity) Outcome {
	return Outcome{Kind: OutcomeAuthenticated, Identity: &identity}
}

// Unauthenticated builds an OutcomeUnauthenticated.
func Unauthenticated() Outcome {
	return Outcome{Kind: OutcomeUnauthenticated}
}

// TokenExpired builds an OutcomeTokenExpired.
func TokenExpired() Outcome {
	return Outcome{Kind: OutcomeTokenExpired}
}

// TokenInvalid builds an OutcomeTokenInvalid.
func TokenInvalid() Outcome {
	return Outcome{Kind: OutcomeTokenInvalid}
}
