package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/authgate/internal/app"
	"github.com/allisson/authgate/internal/config"
)

func getCommands(version string) []*cli.Command {
	return append(getSystemCommands(version), getAuthCommands()...)
}

// loadConfig loads the environment and rejects settings the commands cannot run with.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// withContainer adapts fn into a cli action that receives a container built from the validated
// configuration. The container is shut down when fn returns.
func withContainer(
	fn func(ctx context.Context, cmd *cli.Command, cfg *config.Config, container *app.Container) error,
) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		container := app.NewContainer(cfg)
		defer func() { _ = container.Shutdown(context.Background()) }()

		return fn(ctx, cmd, cfg, container)
	}
}
