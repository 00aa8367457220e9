package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	authUseCase "github.com/allisson/authgate/internal/auth/usecase"
)

// RunIssueToken issues an authentication token for an existing user and prints the plain
// token once, in text or JSON format. ttlSeconds of zero uses the configured default
// expiration; noExpiry issues a token that never expires.
//
// Requirements: Database must be migrated and the user must exist.
func RunIssueToken(
	ctx context.Context,
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	username string,
	ttlSeconds int,
	noExpiry bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if ttlSeconds < 0 {
		return fmt.Errorf("ttl must not be negative")
	}

	logger.Info("issuing token", slog.String("username", username))

	output, err := tokenUseCase.Issue(ctx, &authDomain.IssueTokenInput{
		Username: username,
		TTL:      time.Duration(ttlSeconds) * time.Second,
		NoExpiry: noExpiry,
	})
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	if format == FormatJSON {
		if err := writeJSON(writer, issueTokenResult(output)); err != nil {
			return err
		}
	} else {
		outputIssueTokenText(output, writer)
	}

	logger.Info("token issued successfully",
		slog.String("user_id", output.UserID.String()),
		slog.Bool("expires", output.ExpiresAt != nil),
	)

	return nil
}

// issueTokenResult is the JSON shape of the issue-token output.
func issueTokenResult(output *authDomain.IssueTokenOutput) map[string]any {
	var expiresAt any
	if output.ExpiresAt != nil {
		expiresAt = output.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return map[string]any{
		"user_id":    output.UserID.String(),
		"token":      output.PlainToken,
		"expires_at": expiresAt,
	}
}

// outputIssueTokenText outputs the result in human-readable text format.
func outputIssueTokenText(output *authDomain.IssueTokenOutput, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nToken issued successfully!")
	_, _ = fmt.Fprintf(writer, "User ID: %s\n", output.UserID.String())
	_, _ = fmt.Fprintf(writer, "Token: %s\n", output.PlainToken)
	if output.ExpiresAt != nil {
		_, _ = fmt.Fprintf(writer, "Expires at: %s\n", output.ExpiresAt.UTC().Format(time.RFC3339))
	} else {
		_, _ = fmt.Fprintln(writer, "Expires at: never")
	}
	_, _ = fmt.Fprintln(writer, "\nIMPORTANT: The token is shown only once. Store it securely.")
}
