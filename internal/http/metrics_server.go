package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/authgate/internal/metrics"
)

// MetricsServer serves /metrics on its own port so scrapes never pass through the
// authenticated router.
type MetricsServer struct {
	*listener
	router *gin.Engine
}

// NewMetricsServer builds the metrics server for provider.
func NewMetricsServer(host string, port int, logger *slog.Logger, provider *metrics.Provider) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/metrics", gin.WrapH(provider.Handler()))

	return &MetricsServer{
		listener: newListener("metrics server", host, port, logger),
		router:   router,
	}
}

// GetHandler returns the router, for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.router
}

// Start blocks until the server stops.
func (s *MetricsServer) Start(ctx context.Context) error {
	return s.serve(s.router)
}

func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.shutdown(ctx)
}
