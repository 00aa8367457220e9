package usecase

import (
	"context"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	authService "github.com/allisson/authgate/internal/auth/service"
	"github.com/allisson/authgate/internal/config"
	"github.com/allisson/authgate/internal/database"
	appValidation "github.com/allisson/authgate/internal/validation"
)

// tokenUseCase implements TokenUseCase.
type tokenUseCase struct {
	config       *config.Config
	txManager    database.TxManager
	userRepo     UserRepository
	tokenRepo    TokenRepository
	tokenService authService.TokenService
}

// Issue generates a token for a user and stores its hash.
//
// Expiry: input.TTL when positive, otherwise Config.AuthTokenExpiration. A resulting
// lifetime of zero (or input.NoExpiry) issues a non-expiring token.
// The plain token is returned once and never persisted. The user lookup and the insert share
// one transaction.
func (t *tokenUseCase) Issue(
	ctx context.Context,
	input *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	if err := validateIssueTokenInput(input); err != nil {
		return nil, err
	}

	plainToken, tokenHash, err := t.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var expiresAt *time.Time
	if ttl := t.lifetime(input); ttl > 0 {
		expiry := now.Add(ttl)
		expiresAt = &expiry
	}

	var userID uuid.UUID
	err = t.txManager.WithTx(ctx, func(ctx context.Context) error {
		user, err := t.userRepo.GetByUsername(ctx, input.Username)
		if err != nil {
			return err
		}
		userID = user.ID

		return t.tokenRepo.Create(ctx, &authDomain.Token{
			ID:        uuid.Must(uuid.NewV7()),
			TokenHash: tokenHash,
			UserID:    user.ID,
			ExpiresAt: expiresAt,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &authDomain.IssueTokenOutput{
		PlainToken: plainToken,
		UserID:     userID,
		ExpiresAt:  expiresAt,
	}, nil
}

func (t *tokenUseCase) lifetime(input *authDomain.IssueTokenInput) time.Duration {
	if input.NoExpiry {
		return 0
	}
	if input.TTL > 0 {
		return input.TTL
	}
	return t.config.AuthTokenExpiration
}

func validateIssueTokenInput(input *authDomain.IssueTokenInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.NoWhitespace,
			validation.Length(1, 255).Error("username must be between 1 and 255 characters"),
		),
		validation.Field(&input.TTL,
			validation.Min(time.Duration(0)).Error("ttl must not be negative"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// NewTokenUseCase creates a new TokenUseCase with the provided dependencies.
func NewTokenUseCase(
	config *config.Config,
	txManager database.TxManager,
	userRepo UserRepository,
	tokenRepo TokenRepository,
	tokenService authService.TokenService,
) TokenUseCase {
	return &tokenUseCase{
		config:       config,
		txManager:    txManager,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		tokenService: tokenService,
	}
}
