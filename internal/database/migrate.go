package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordcard/schemas"
)

// Migrate applies every pending migration embedded in the schemas package.
func Migrate(db *sqlx.DB) error {
	source, err := iofs.New(schemas.Migrations, schemas.MigrationsDirectory)
	if err != nil {
		return fmt.Errorf("iofs.New() > %w", err)
	}

	driver, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	if err != nil {
		return fmt.Errorf("migratemysql.WithInstance() > %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return fmt.Errorf("migrate.NewWithInstance() > %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("database schema is up to date")
			return nil
		}
		return fmt.Errorf("m.Up() > %w", err)
	}

	version, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("m.Version() > %w", err)
	}
	slog.Info("database schema migrated", "version", version)
	return nil
}
