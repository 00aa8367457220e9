// Package httputil writes error responses for the Gin handlers.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	apperrors "github.com/allisson/authgate/internal/errors"
)

// StatusAuthenticationTimeout is the non-standard status returned when a presented
// authentication token is expired or invalid.
const StatusAuthenticationTimeout = 419

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type errorMapping struct {
	target error
	status int
	body   ErrorResponse
	// exposeCause replaces the message with the error text.
	exposeCause bool
}

// errorMappings is matched in order; the first sentinel found in the error chain wins.
// Token failures carry only the error field.
var errorMappings = []errorMapping{
	{
		target: apperrors.ErrTokenExpired,
		status: StatusAuthenticationTimeout,
		body:   ErrorResponse{Error: authDomain.TokenExpiredMessage},
	},
	{
		target: apperrors.ErrTokenInvalid,
		status: StatusAuthenticationTimeout,
		body:   ErrorResponse{Error: authDomain.TokenInvalidMessage},
	},
	{
		target: apperrors.ErrUnauthorized,
		status: http.StatusUnauthorized,
		body:   ErrorResponse{Error: "unauthorized", Message: "Authentication is required"},
	},
	{
		target: apperrors.ErrNotFound,
		status: http.StatusNotFound,
		body:   ErrorResponse{Error: "not_found", Message: "The requested resource was not found"},
	},
	{
		target: apperrors.ErrConflict,
		status: http.StatusConflict,
		body:   ErrorResponse{Error: "conflict", Message: "A conflict occurred with existing data"},
	},
	{
		target:      apperrors.ErrInvalidInput,
		status:      http.StatusUnprocessableEntity,
		body:        ErrorResponse{Error: "invalid_input"},
		exposeCause: true,
	},
}

var internalError = ErrorResponse{Error: "internal_error", Message: "An internal error occurred"}

// HandleErrorGin writes the response mapped to err. Unknown errors become a 500 whose body
// does not reveal the cause. Client errors are logged at debug level, the rest at error.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode, body := http.StatusInternalServerError, internalError
	for _, m := range errorMappings {
		if apperrors.Is(err, m.target) {
			statusCode, body = m.status, m.body
			if m.exposeCause {
				body.Message = err.Error()
			}
			break
		}
	}

	if logger != nil {
		level := slog.LevelError
		if statusCode < http.StatusInternalServerError {
			level = slog.LevelDebug
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", body.Error),
			slog.Any("error", err),
		)
	}

	c.AbortWithStatusJSON(statusCode, body)
}
