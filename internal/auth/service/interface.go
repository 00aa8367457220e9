// Package service provides technical services for token authentication.
//
// It covers bearer token generation and hashing, and the randomized delay applied
// when a presented token is unknown.
package service

import "time"

// TokenService defines operations for bearer token generation and hashing.
type TokenService interface {
	// GenerateToken creates a new random token. Returns the plain token (shown to the
	// caller once) and the hash that is persisted.
	GenerateToken() (plainToken string, tokenHash string, err error)

	// HashToken returns the lookup hash of a plain token.
	HashToken(plainToken string) string
}

// Delayer blocks the calling goroutine for a randomized interval and reports how long it waited.
// Implementations must be safe for concurrent use; a call never blocks other goroutines.
type Delayer interface {
	Delay() time.Duration
}
