package usecase

import (
	"context"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	authService "github.com/allisson/authgate/internal/auth/service"
)

// tokenStore adapts a TokenRepository keyed by hash to the TokenStore capability.
type tokenStore struct {
	repo         TokenRepository
	tokenService authService.TokenService
}

// NewTokenStore creates a TokenStore that hashes plain tokens before looking them up.
func NewTokenStore(repo TokenRepository, tokenService authService.TokenService) TokenStore {
	return &tokenStore{
		repo:         repo,
		tokenService: tokenService,
	}
}

// FindByToken implements TokenStore.
func (s *tokenStore) FindByToken(ctx context.Context, plainToken string) (*authDomain.StoredToken, error) {
	return s.repo.GetByTokenHash(ctx, s.tokenService.HashToken(plainToken))
}
