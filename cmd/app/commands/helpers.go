// Package commands implements the authgate CLI commands. Each Run function takes its
// dependencies and output writer explicitly so it can be tested without a process.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/authgate/internal/app"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

func closeMigrate(m *migrate.Migrate, logger *slog.Logger) {
	sourceErr, databaseErr := m.Close()
	if sourceErr != nil || databaseErr != nil {
		logger.Error("failed to close migrate",
			slog.Any("source_error", sourceErr),
			slog.Any("database_error", databaseErr),
		)
	}
}

func validateFormat(format string) error {
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (valid options: %s, %s)", format, FormatText, FormatJSON)
	}
	return nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
