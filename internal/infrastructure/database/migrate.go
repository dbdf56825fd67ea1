package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// migrateLogger routes golang-migrate's progress output into slog.
type migrateLogger struct {
	logger *slog.Logger
}

var _ migrate.Logger = migrateLogger{}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}

// RunMigrations brings the word_pairs schema up to date from the SQL files
// in migrationsPath. A dirty database is reported instead of migrated.
func RunMigrations(dsn string, migrationsPath string, logger *slog.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()
	m.Log = migrateLogger{logger: logger}

	if _, dirty, err := m.Version(); err == nil && dirty {
		return errors.New("migration up: database is dirty, fix it and force a version first")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}

	version, _, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Info("no migrations found", "path", migrationsPath)
	case err != nil:
		return fmt.Errorf("migration version: %w", err)
	default:
		logger.Info("migrations applied", "version", version)
	}
	return nil
}
