// Package mocks provides mock implementations of the auth use case interfaces for testing.
package mocks

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	userDomain "github.com/allisson/authgate/internal/user/domain"
)

// MockAuthResolver is a mock implementation of AuthResolver.
type MockAuthResolver struct {
	mock.Mock
}

// IsAuthenticated mocks the IsAuthenticated method.
func (m *MockAuthResolver) IsAuthenticated(r *http.Request) (bool, error) {
	args := m.Called(r)
	return args.Bool(0), args.Error(1)
}

// CurrentIdentity mocks the CurrentIdentity method.
func (m *MockAuthResolver) CurrentIdentity(r *http.Request) (*authDomain.Identity, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Identity), args.Error(1)
}

// MockTokenUseCase is a mock implementation of TokenUseCase.
type MockTokenUseCase struct {
	mock.Mock
}

// Issue mocks the Issue method.
func (m *MockTokenUseCase) Issue(
	ctx context.Context,
	input *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IssueTokenOutput), args.Error(1)
}

// MockSessionAuthority is a mock implementation of SessionAuthority.
type MockSessionAuthority struct {
	mock.Mock
}

// IsSessionAuthenticated mocks the IsSessionAuthenticated method.
func (m *MockSessionAuthority) IsSessionAuthenticated(r *http.Request) (bool, error) {
	args := m.Called(r)
	return args.Bool(0), args.Error(1)
}

// SessionIdentity mocks the SessionIdentity method.
func (m *MockSessionAuthority) SessionIdentity(r *http.Request) (*authDomain.Identity, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Identity), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStore.
type MockTokenStore struct {
	mock.Mock
}

// FindByToken mocks the FindByToken method.
func (m *MockTokenStore) FindByToken(ctx context.Context, plainToken string) (*authDomain.StoredToken, error) {
	args := m.Called(ctx, plainToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.StoredToken), args.Error(1)
}

// MockTokenRepository is a mock implementation of TokenRepository.
type MockTokenRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockTokenRepository) Create(ctx context.Context, token *authDomain.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// GetByTokenHash mocks the GetByTokenHash method.
func (m *MockTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.StoredToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.StoredToken), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// GetByUsername mocks the GetByUsername method.
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// GenerateToken mocks the GenerateToken method.
func (m *MockTokenService) GenerateToken() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

// HashToken mocks the HashToken method.
func (m *MockTokenService) HashToken(plainToken string) string {
	args := m.Called(plainToken)
	return args.String(0)
}

// MockTxManager is a mock implementation of database.TxManager.
// It runs fn with the caller's context unless the expectation returns an error.
type MockTxManager struct {
	mock.Mock
}

// WithTx mocks the WithTx method.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
