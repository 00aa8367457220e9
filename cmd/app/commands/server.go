package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/authgate/internal/app"
	"github.com/allisson/authgate/internal/config"
)

// runnable is a server that blocks in Start until Shutdown is called.
type runnable interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type namedServer struct {
	name   string
	server runnable
}

// RunServer starts the API server and, when enabled, the metrics server. It blocks until
// SIGINT/SIGTERM or until one of the servers fails, then stops both within
// cfg.ServerShutdownTimeout.
func RunServer(ctx context.Context, cfg *config.Config, version string) error {
	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("starting authgate",
		slog.String("version", version),
		slog.String("db_driver", cfg.DBDriver),
		slog.String("session_backend", cfg.SessionBackend),
	)
	defer closeContainer(container, logger)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Building the API server initializes every dependency, so configuration errors
	// surface before anything listens.
	server, err := container.HTTPServer(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}
	servers := []namedServer{{name: "api server", server: server}}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}
	if metricsServer != nil {
		servers = append(servers, namedServer{name: "metrics server", server: metricsServer})
	}

	return serveUntilDone(ctx, logger, cfg.ServerShutdownTimeout, servers)
}

// serveUntilDone runs every server until ctx ends or one of them fails, then shuts all of them
// down within shutdownTimeout. The first server error wins; otherwise shutdown failures are
// returned joined.
func serveUntilDone(
	ctx context.Context,
	logger *slog.Logger,
	shutdownTimeout time.Duration,
	servers []namedServer,
) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, s := range servers {
		g.Go(func() error {
			if err := s.server.Start(gctx); err != nil {
				return fmt.Errorf("%s error: %w", s.name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logger.Info("shutdown signal received")
		} else {
			logger.Error("server error, initiating shutdown")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, s := range servers {
			if err := s.server.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("%s shutdown: %w", s.name, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
