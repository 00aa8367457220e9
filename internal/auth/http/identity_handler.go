package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/authgate/internal/errors"
	"github.com/allisson/authgate/internal/httputil"
)

// IdentityResponse is the body of GET /v1/me.
type IdentityResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Time     string `json:"time"`
}

// IdentityHandler serves the authenticated caller's identity.
type IdentityHandler struct {
	logger *slog.Logger
}

// NewIdentityHandler creates a new IdentityHandler.
func NewIdentityHandler(logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{logger: logger}
}

// MeHandler returns the identity stored by AuthenticationMiddleware.
// GET /v1/me
func (h *IdentityHandler) MeHandler(c *gin.Context) {
	identity, ok := GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, IdentityResponse{
		UserID:   identity.UserID.String(),
		Username: identity.Username,
		Time:     time.Now().UTC().Format(time.RFC3339),
	})
}
