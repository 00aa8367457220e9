// Package errors defines the sentinel errors shared by every layer. Use cases and
// repositories wrap them with context; httputil.HandleErrorGin maps them to responses.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized marks a request that reached a protected handler without an identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenExpired marks a token that was valid once. Callers must re-authenticate.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid covers both a missing and an unknown token; the two are not told apart.
	ErrTokenInvalid = errors.New("token invalid")
)

// Wrap prefixes err with message and keeps it in the chain. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
