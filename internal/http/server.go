// Package http provides the HTTP server, router and infrastructure endpoints.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/authgate/internal/auth/http"
	authUseCase "github.com/allisson/authgate/internal/auth/usecase"
	"github.com/allisson/authgate/internal/config"
	"github.com/allisson/authgate/internal/metrics"
)

// Server is the API server. Its router is built by SetupRouter.
type Server struct {
	*listener
	db     *sql.DB
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The router is built by SetupRouter.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		listener: newListener("http server", host, port, logger),
		db:       db,
		logger:   logger,
	}
}

// SetupRouter builds the Gin router.
//
// Public routes: /health, /ready, /v1/routes. Authenticated routes (/v1/me) sit behind the
// optional per-IP limiter and AuthenticationMiddleware. Every declared operation is validated
// first; an invalid declaration is a startup error.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	resolver authUseCase.AuthResolver,
	identityHandler *authHTTP.IdentityHandler,
	metricsProvider *metrics.Provider,
) error {
	operations := Operations()
	for _, op := range operations {
		if err := op.Validate(); err != nil {
			return fmt.Errorf("invalid route declaration %s %s: %w", op.Method, op.Path, err)
		}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := newCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsProvider.Namespace()))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	v1.GET("/routes", routesHandler(operations))

	authenticated := v1.Group("")
	if cfg.RateLimitTokenEnabled {
		authenticated.Use(authHTTP.TokenRateLimitMiddleware(
			ctx,
			cfg.RateLimitTokenRequestsPerSec,
			cfg.RateLimitTokenBurst,
			s.logger,
		))
	}
	authenticated.Use(authHTTP.AuthenticationMiddleware(resolver, s.logger))
	authenticated.GET("/me", identityHandler.MeHandler)

	s.router = router
	return nil
}

// GetHandler returns the router built by SetupRouter, for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	return s.serve(s.router)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.shutdown(ctx)
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness, which requires a reachable database.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
