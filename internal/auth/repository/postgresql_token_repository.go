// Package repository provides data persistence implementations for bearer tokens.
package repository

import (
	"context"
	"database/sql"
	"errors"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	"github.com/allisson/authgate/internal/database"
	apperrors "github.com/allisson/authgate/internal/errors"
	userDomain "github.com/allisson/authgate/internal/user/domain"
)

// PostgreSQLTokenRepository implements Token persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

// Create inserts a new Token into the PostgreSQL database. Only the token hash is stored.
func (p *PostgreSQLTokenRepository) Create(ctx context.Context, token *authDomain.Token) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO auth_tokens (id, user_id, token_hash, expires_at, revoked_at, created_at) 
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID,
		token.UserID,
		token.TokenHash,
		token.ExpiresAt,
		token.RevokedAt,
		token.CreatedAt,
	)
	if err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return authDomain.ErrTokenConflict
		case database.IsForeignKeyViolation(err):
			return userDomain.ErrUserNotFound
		}
		return apperrors.Wrap(err, "failed to create token")
	}
	return nil
}

// GetByTokenHash retrieves the non-revoked token with the given hash together with its owner.
// Returns ErrTokenNotFound if there is none.
func (p *PostgreSQLTokenRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*authDomain.StoredToken, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT u.id, u.username, t.expires_at 
			  FROM auth_tokens t 
			  JOIN users u ON u.id = t.user_id 
			  WHERE t.token_hash = $1 AND t.revoked_at IS NULL`

	var stored authDomain.StoredToken

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&stored.Identity.UserID,
		&stored.Identity.Username,
		&stored.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get token by hash")
	}

	return &stored, nil
}

// NewPostgreSQLTokenRepository creates a new PostgreSQL Token repository.
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{db: db}
}
