package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	"github.com/allisson/authgate/internal/metrics"
)

// authResolverWithMetrics decorates AuthResolver with metrics instrumentation.
type authResolverWithMetrics struct {
	next    AuthResolver
	metrics metrics.BusinessMetrics
}

// NewAuthResolverWithMetrics wraps an AuthResolver with metrics recording.
func NewAuthResolverWithMetrics(resolver AuthResolver, m metrics.BusinessMetrics) AuthResolver {
	return &authResolverWithMetrics{
		next:    resolver,
		metrics: m,
	}
}

// IsAuthenticated records the authentication decision, labelled by outcome.
func (a *authResolverWithMetrics) IsAuthenticated(r *http.Request) (bool, error) {
	start := time.Now()
	ok, err := a.next.IsAuthenticated(r)

	status := "success"
	switch {
	case errors.Is(err, authDomain.ErrAuthTokenExpired):
		status = "token_expired"
	case errors.Is(err, authDomain.ErrAuthTokenInvalid):
		status = "token_invalid"
	case err != nil:
		status = "error"
	}

	ctx := r.Context()
	a.metrics.RecordOperation(ctx, "auth", "is_authenticated", status)
	a.metrics.RecordDuration(ctx, "auth", "is_authenticated", time.Since(start), status)

	return ok, err
}

// CurrentIdentity records identity lookups.
func (a *authResolverWithMetrics) CurrentIdentity(r *http.Request) (*authDomain.Identity, error) {
	start := time.Now()
	identity, err := a.next.CurrentIdentity(r)

	status := "success"
	if err != nil {
		status = "error"
	}

	ctx := r.Context()
	a.metrics.RecordOperation(ctx, "auth", "current_identity", status)
	a.metrics.RecordDuration(ctx, "auth", "current_identity", time.Since(start), status)

	return identity, err
}

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for token issuance.
func (t *tokenUseCaseWithMetrics) Issue(
	ctx context.Context,
	input *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	start := time.Now()
	output, err := t.next.Issue(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "auth", "token_issue", status)
	t.metrics.RecordDuration(ctx, "auth", "token_issue", time.Since(start), status)

	return output, err
}
