package domain

import (
	"github.com/allisson/authgate/internal/errors"
)

// Authentication errors.
var (
	// ErrTokenNotFound indicates no non-revoked token matches the presented value.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrTokenConflict indicates the generated token hash is already stored.
	ErrTokenConflict = errors.Wrap(errors.ErrConflict, "token already exists")

	// ErrAuthTokenExpired is the caller-visible signal for an expired token.
	ErrAuthTokenExpired = errors.Wrap(errors.ErrTokenExpired, "authentication token expired")

	// ErrAuthTokenInvalid is the caller-visible signal for a missing or unknown token.
	ErrAuthTokenInvalid = errors.Wrap(errors.ErrTokenInvalid, "authentication token invalid")
)
