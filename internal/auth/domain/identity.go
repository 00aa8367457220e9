package domain

import "github.com/google/uuid"

// Identity is the authenticated principal behind a request.
// It is produced by a session or token lookup and never constructed by the resolver itself.
type Identity struct {
	UserID   uuid.UUID
	Username string
}
