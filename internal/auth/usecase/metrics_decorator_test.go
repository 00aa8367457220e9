package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	"github.com/allisson/authgate/internal/auth/usecase"
	usecaseMocks "github.com/allisson/authgate/internal/auth/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestAuthResolverWithMetrics_IsAuthenticated(t *testing.T) {
	tests := []struct {
		name       string
		ok         bool
		err        error
		wantStatus string
	}{
		{name: "authenticated", ok: true, wantStatus: "success"},
		{name: "expired", err: authDomain.ErrAuthTokenExpired, wantStatus: "token_expired"},
		{name: "invalid", err: authDomain.ErrAuthTokenInvalid, wantStatus: "token_invalid"},
		{name: "infrastructure fault", err: errors.New("db down"), wantStatus: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
			ctx := r.Context()
			mockNext := &usecaseMocks.MockAuthResolver{}
			mockMetrics := &mockBusinessMetrics{}
			resolver := usecase.NewAuthResolverWithMetrics(mockNext, mockMetrics)

			mockNext.On("IsAuthenticated", r).Return(tt.ok, tt.err).Once()
			mockMetrics.On("RecordOperation", ctx, "auth", "is_authenticated", tt.wantStatus).Return().Once()
			mockMetrics.On("RecordDuration", ctx, "auth", "is_authenticated", mock.AnythingOfType("time.Duration"), tt.wantStatus).
				Return().
				Once()

			ok, err := resolver.IsAuthenticated(r)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.err, err)
			mockNext.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestAuthResolverWithMetrics_CurrentIdentity(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	ctx := r.Context()

	t.Run("success", func(t *testing.T) {
		identity := &authDomain.Identity{UserID: uuid.New(), Username: "alice"}
		mockNext := &usecaseMocks.MockAuthResolver{}
		mockMetrics := &mockBusinessMetrics{}
		resolver := usecase.NewAuthResolverWithMetrics(mockNext, mockMetrics)

		mockNext.On("CurrentIdentity", r).Return(identity, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "current_identity", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "current_identity", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		got, err := resolver.CurrentIdentity(r)

		assert.NoError(t, err)
		assert.Equal(t, identity, got)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockAuthResolver{}
		mockMetrics := &mockBusinessMetrics{}
		resolver := usecase.NewAuthResolverWithMetrics(mockNext, mockMetrics)

		mockNext.On("CurrentIdentity", r).Return(nil, errors.New("error")).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "current_identity", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "current_identity", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		got, err := resolver.CurrentIdentity(r)

		assert.Error(t, err)
		assert.Nil(t, got)
		mockMetrics.AssertExpectations(t)
	})
}

func TestTokenUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	input := &authDomain.IssueTokenInput{Username: "alice"}

	t.Run("Issue success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockTokenUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)
		output := &authDomain.IssueTokenOutput{PlainToken: "plain", UserID: uuid.New()}

		mockNext.On("Issue", ctx, input).Return(output, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "token_issue", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "token_issue", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Issue(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Issue error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockTokenUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Issue", ctx, input).Return(nil, errors.New("error")).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "token_issue", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "token_issue", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Issue(ctx, input)
		assert.Error(t, err)
		assert.Nil(t, res)
		mockMetrics.AssertExpectations(t)
	})
}
