package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies all pending migrations for driver (postgres or mysql) from
// migrations/postgresql or migrations/mysql. Having nothing to apply is not an error.
func RunMigrations(logger *slog.Logger, driver, connectionString string) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	migrationsPath := "file://migrations/postgresql"
	if driver == "mysql" {
		migrationsPath = "file://migrations/mysql"
	}

	m, err := migrate.New(migrationsPath, migrationDatabaseURL(driver, connectionString))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

// migrationDatabaseURL turns a go-sql-driver/mysql DSN into the mysql:// URL golang-migrate
// expects. Postgres connection strings are already URLs.
func migrationDatabaseURL(driver, connectionString string) string {
	if driver == "mysql" && !strings.HasPrefix(connectionString, "mysql://") {
		return "mysql://" + connectionString
	}
	return connectionString
}
