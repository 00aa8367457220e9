// Package domain defines authentication domain models.
// Covers caller identities, stored bearer tokens, and the tagged outcome of a token check.
package domain

// Request parameter contract for bearer tokens.
const (
	// TokenParam is the request parameter (query key) that carries the bearer token.
	TokenParam = "auth_token"

	// TokenHeader is the header alternative to TokenParam.
	TokenHeader = "Auth-Token"

	// TokenParamType is the declared type of the token parameter.
	TokenParamType = "String"

	// TokenParamDescription is the human-readable description of the token parameter.
	TokenParamDescription = "Authentication token"
)

// Caller-visible failure messages.
const (
	// TokenExpiredMessage is returned when a presented token has expired.
	TokenExpiredMessage = "Authentication token expired."

	// TokenInvalidMessage is returned when no usable token was presented.
	TokenInvalidMessage = "Could not authenticate with token. Token invalid."
)
