package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/authgate/cmd/app/commands"
	"github.com/allisson/authgate/internal/app"
	"github.com/allisson/authgate/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				return commands.RunServer(ctx, cfg, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations",
			Action: withContainer(
				func(ctx context.Context, cmd *cli.Command, cfg *config.Config, container *app.Container) error {
					return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
				},
			),
		},
		{
			Name:  "routes",
			Usage: "Print the API operations and their parameter declarations",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   commands.FormatJSON,
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunRoutes(os.Stdout, cmd.String("format"))
			},
		},
	}
}
