// Package repository provides session lookups backed by SQL databases or Redis.
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

// PostgreSQLSessionRepository reads sessions from PostgreSQL.
type PostgreSQLSessionRepository struct {
	db *sql.DB
}

// Get retrieves a session and its owner's username. Returns ErrSessionNotFound if there is none.
func (p *PostgreSQLSessionRepository) Get(ctx context.Context, sessionID uuid.UUID) (*sessionDomain.Session, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT s.id, s.user_id, u.username, s.expires_at, s.created_at 
			  FROM sessions s 
			  JOIN users u ON u.id = s.user_id 
			  WHERE s.id = $1`

	var session sessionDomain.Session

	err := querier.QueryRowContext(ctx, query, sessionID).Scan(
		&session.ID,
		&session.UserID,
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

	return &session, nil
}

// NewPostgreSQLSessionRepository creates a new PostgreSQL session repository.
func NewPostgreSQLSessionRepository(db *sql.DB) *PostgreSQLSessionRepository {
	return &PostgreSQLSessionRepository{db: db}
}
