package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/authgate/internal/database"
	apperrors "github.com/allisson/authgate/internal/errors"
	"github.com/allisson/authgate/internal/user/domain"
)

// MySQLUserRepository handles user lookups for MySQL.
// User ids are stored as BINARY(16).
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// GetByUsername retrieves a user by username
func (r *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	var idBytes []byte
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, email, created_at, updated_at 
			  FROM users WHERE username = ?`

	err := querier.QueryRowContext(ctx, query, username).Scan(
		&idBytes, &user.Username, &user.Email, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by username")
	}

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return &user, nil
}
