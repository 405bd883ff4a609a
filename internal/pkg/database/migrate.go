package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// MigrationDirection selects which way RunMigrations moves the schema
type MigrationDirection string

const (
	MigrateUp   MigrationDirection = "up"
	MigrateDown MigrationDirection = "down"
)

// RunMigrations applies or rolls back every migration under dir.
// An already up-to-date schema is not an error.
func RunMigrations(config models.DatabaseConfig, dir string, direction MigrationDirection) error {
	m, err := migrate.New("file://"+dir, BuildDSN(config))
	if err != nil {
		return fmt.Errorf("could not start migrations: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator", logger.Any("source_error", srcErr), logger.Any("db_error", dbErr))
		}
	}()

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", verr)
	}
	logger.Info("Migrations applied",
		logger.String("direction", string(direction)),
		logger.Int64("version", int64(version)),
		logger.Bool("dirty", dirty))
	return nil
}
