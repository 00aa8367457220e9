package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	authService "github.com/allisson/authgate/internal/auth/service"
	"github.com/allisson/authgate/internal/auth/usecase"
)

func TestTokenAuthenticator_Evaluate(t *testing.T) {
	ctx := context.Background()
	store, identity := fixtureStore()

	tests := []struct {
		name       string
		token      string
		present    bool
		wantKind   authDomain.OutcomeKind
		wantDelays int32
	}{
		{name: "absent token", present: false, wantKind: authDomain.OutcomeUnauthenticated},
		{name: "valid token", token: "abc123", present: true, wantKind: authDomain.OutcomeAuthenticated},
		{name: "token without expiry", token: "forever", present: true, wantKind: authDomain.OutcomeAuthenticated},
		{name: "expired token", token: "expired123", present: true, wantKind: authDomain.OutcomeTokenExpired},
		{
			name:       "unknown token",
			token:      "doesnotexist",
			present:    true,
			wantKind:   authDomain.OutcomeTokenInvalid,
			wantDelays: 1,
		},
		{
			name:       "empty but present token",
			token:      "",
			present:    true,
			wantKind:   authDomain.OutcomeTokenInvalid,
			wantDelays: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delayer := &countingDelayer{}
			authenticator := usecase.NewTokenAuthenticator(delayer)

			outcome, err := authenticator.Evaluate(ctx, tt.token, tt.present, store)

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, outcome.Kind)
			assert.Equal(t, tt.wantDelays, delayer.calls.Load())
			if tt.wantKind == authDomain.OutcomeAuthenticated {
				require.NotNil(t, outcome.Identity)
				assert.Equal(t, identity, *outcome.Identity)
			} else {
				assert.Nil(t, outcome.Identity)
			}
		})
	}

	t.Run("store failure is returned without delay", func(t *testing.T) {
		delayer := &countingDelayer{}
		authenticator := usecase.NewTokenAuthenticator(delayer)
		storeErr := errors.New("connection refused")

		_, err := authenticator.Evaluate(ctx, "abc123", true, &memoryTokenStore{err: storeErr})

		assert.ErrorIs(t, err, storeErr)
		assert.Zero(t, delayer.calls.Load())
	})

	t.Run("unknown token waits at least the minimum delay", func(t *testing.T) {
		authenticator := usecase.NewTokenAuthenticator(
			authService.NewRandomDelayer(authService.DefaultMinDelay, authService.DefaultMaxDelay),
		)

		start := time.Now()
		outcome, err := authenticator.Evaluate(ctx, "doesnotexist", true, store)
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Equal(t, authDomain.OutcomeTokenInvalid, outcome.Kind)
		assert.GreaterOrEqual(t, elapsed, authService.DefaultMinDelay)
	})

	t.Run("known tokens are answered without waiting", func(t *testing.T) {
		authenticator := usecase.NewTokenAuthenticator(
			authService.NewRandomDelayer(authService.DefaultMinDelay, authService.DefaultMaxDelay),
		)

		start := time.Now()
		_, err := authenticator.Evaluate(ctx, "expired123", true, store)
		require.NoError(t, err)
		_, err = authenticator.Evaluate(ctx, "abc123", true, store)
		require.NoError(t, err)

		assert.Less(t, time.Since(start), authService.DefaultMinDelay)
	})
}

func TestTokenAuthenticator_Lookup(t *testing.T) {
	ctx := context.Background()
	store, identity := fixtureStore()
	delayer := &countingDelayer{}
	authenticator := usecase.NewTokenAuthenticator(delayer)

	t.Run("valid token", func(t *testing.T) {
		got, err := authenticator.Lookup(ctx, "abc123", store)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, identity, *got)
	})

	t.Run("expired token", func(t *testing.T) {
		got, err := authenticator.Lookup(ctx, "expired123", store)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown token", func(t *testing.T) {
		got, err := authenticator.Lookup(ctx, "doesnotexist", store)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	assert.Zero(t, delayer.calls.Load())
}
