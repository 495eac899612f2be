// Package migrations carries the embedded schema for every supported store
// and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"

	"github.com/autoplus/concesionaria/internal/domain/entity"
)

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// seedRoleSQL inserts one role name, leaving existing rows alone.
var seedRoleSQL = map[string]string{
	DriverSQLite:   `INSERT OR IGNORE INTO roles (nombre) VALUES (?)`,
	DriverPostgres: `INSERT INTO roles (nombre) VALUES ($1) ON CONFLICT (nombre) DO NOTHING`,
}

// Up applies every pending migration for driver on db, then re-seeds the
// roles. Running it against an up-to-date schema only restores missing roles.
func Up(db *sql.DB, driver string, logger *logrus.Logger) error {
	m, err := newMigrate(db, driver)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.WithField("driver", driver).Info("running migrations...")
	}
	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		if logger != nil {
			logger.Info("no migrations to run")
		}
	case err != nil:
		return err
	}
	return SeedRoles(db, driver)
}

// SeedRoles inserts every known role that is missing from the roles table.
func SeedRoles(db *sql.DB, driver string) error {
	q, ok := seedRoleSQL[driver]
	if !ok {
		return fmt.Errorf("unsupported migration driver %q", driver)
	}
	for _, r := range entity.Roles() {
		if _, err := db.Exec(q, r.String()); err != nil {
			return fmt.Errorf("seed role %s: %w", r, err)
		}
	}
	return nil
}

func newMigrate(db *sql.DB, driver string) (*migrate.Migrate, error) {
	if db == nil {
		return nil, errors.New("sql db is required")
	}

	var (
		dbDriver database.Driver
		err      error
	)
	switch driver {
	case DriverSQLite:
		dbDriver, err = sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	case DriverPostgres:
		dbDriver, err = pgmigrate.WithInstance(db, &pgmigrate.Config{})
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	src, err := iofs.New(FS, driver)
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, driver, dbDriver)
	if err != nil {
		return nil, fmt.Errorf("migration instance: %w", err)
	}
	return m, nil
}
