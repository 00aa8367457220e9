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

// MySQLTokenRepository implements Token persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLTokenRepository struct {
	db *sql.DB
}

// Create inserts a new Token into the MySQL database using BINARY(16) for UUIDs.
// Returns an error if UUID marshaling or database insertion fails.
func (m *MySQLTokenRepository) Create(ctx context.Context, token *authDomain.Token) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO auth_tokens (id, user_id, token_hash, expires_at, revoked_at, created_at) 
			  VALUES (?, ?, ?, ?, ?, ?)`

	id, err := token.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal token id")
	}

	userID, err := token.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		userID,
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
// Returns ErrTokenNotFound if there is none, or an error if UUID unmarshaling fails.
func (m *MySQLTokenRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*authDomain.StoredToken, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT u.id, u.username, t.expires_at 
			  FROM auth_tokens t 
			  JOIN users u ON u.id = t.user_id 
			  WHERE t.token_hash = ? AND t.revoked_at IS NULL`

	var stored authDomain.StoredToken
	var userIDBytes []byte

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&userIDBytes,
		&stored.Identity.Username,
		&stored.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get token by hash")
	}

	if err := stored.Identity.UserID.UnmarshalBinary(userIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return &stored, nil
}

// NewMySQLTokenRepository creates a new MySQL Token repository.
func NewMySQLTokenRepository(db *sql.DB) *MySQLTokenRepository {
	return &MySQLTokenRepository{db: db}
}
