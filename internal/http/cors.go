package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
)

const requestIDHeader = "X-Request-Id"

// newCORSMiddleware returns nil when CORS is disabled or no usable origin is configured.
//
// Browser clients authenticated by session cookie need their origin listed; credentials are
// allowed so the cookie is sent. A wildcard origin cannot be combined with credentials and is
// ignored.
func newCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOrigins)
	if slices.Contains(origins, "*") {
		logger.Warn("ignoring wildcard CORS origin, credentialed requests require explicit origins")
		origins = slices.DeleteFunc(origins, func(o string) bool { return o == "*" })
	}
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no usable origins configured, CORS will not be applied")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))

	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{
			"Authorization",
			authDomain.TokenHeader,
			"Content-Type",
		},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// parseOrigins splits a comma-separated list, dropping blanks and duplicates.
func parseOrigins(s string) []string {
	var origins []string
	for part := range strings.SplitSeq(s, ",") {
		origin := strings.TrimSpace(part)
		if origin != "" && !slices.Contains(origins, origin) {
			origins = append(origins, origin)
		}
	}
	return origins
}
