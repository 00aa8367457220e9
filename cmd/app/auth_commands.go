package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/authgate/cmd/app/commands"
	"github.com/allisson/authgate/internal/app"
	"github.com/allisson/authgate/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "issue-token",
			Usage: "Issue an authentication token for an existing user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Username of the token owner",
				},
				&cli.IntFlag{
					Name:    "ttl",
					Aliases: []string{"t"},
					Value:   0,
					Usage:   "Token lifetime in seconds (0 uses AUTH_TOKEN_EXPIRATION_SECONDS)",
				},
				&cli.BoolFlag{
					Name:  "no-expiry",
					Value: false,
					Usage: "Issue a token that never expires",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   commands.FormatText,
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: withContainer(
				func(ctx context.Context, cmd *cli.Command, cfg *config.Config, container *app.Container) error {
					tokenUseCase, err := container.TokenUseCase()
					if err != nil {
						return err
					}

					return commands.RunIssueToken(
						ctx,
						tokenUseCase,
						container.Logger(),
						os.Stdout,
						cmd.String("username"),
						int(cmd.Int("ttl")),
						cmd.Bool("no-expiry"),
						cmd.String("format"),
					)
				},
			),
		},
	}
}
