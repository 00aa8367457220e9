package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/authgate/internal/database"
	apperrors "github.com/allisson/authgate/internal/errors"
	sessionDomain "github.com/allisson/authgate/internal/session/domain"
)

// MySQLSessionRepository reads sessions from MySQL using BINARY(16) for UUIDs.
type MySQLSessionRepository struct {
	db *sql.DB
}

// Get retrieves a session and its owner's username. Returns ErrSessionNotFound if there is none.
func (m *MySQLSessionRepository) Get(ctx context.Context, sessionID uuid.UUID) (*sessionDomain.Session, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT s.id, s.user_id, u.username, s.expires_at, s.created_at 
			  FROM sessions s 
			  JOIN users u ON u.id = s.user_id 
			  WHERE s.id = ?`

	id, err := sessionID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal session id")
	}

	var session sessionDomain.Session
	var idBytes []byte
	var userIDBytes []byte

	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
		&userIDBytes,
		&session.Username,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sessionDomain.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get session")
	}

	if err := session.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal session id")
	}

	if err := session.UserID.UnmarshalBinary(userIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return &session, nil
}

// NewMySQLSessionRepository creates a new MySQL session repository.
func NewMySQLSessionRepository(db *sql.DB) *MySQLSessionRepository {
	return &MySQLSessionRepository{db: db}
}
