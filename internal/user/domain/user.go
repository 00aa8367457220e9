// Package domain defines the user entity that bearer tokens and sessions belong to.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/authgate/internal/errors"
)

// User is an account that can hold sessions and bearer tokens.
// Users are provisioned outside this service; it only reads them.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ErrUserNotFound indicates the requested user does not exist.
var ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")
