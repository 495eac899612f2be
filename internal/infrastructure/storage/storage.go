// Package storage opens the store selected by DB_DRIVER with its schema and
// role seed applied.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/autoplus/concesionaria/config"
	"github.com/autoplus/concesionaria/internal/infrastructure/migrations"
	pginfra "github.com/autoplus/concesionaria/internal/infrastructure/postgres"
	sqliteinfra "github.com/autoplus/concesionaria/internal/infrastructure/sqlite"
)

// Handles holds the open store. Exactly one of DB and Pool is set.
type Handles struct {
	DB   *sql.DB
	Pool *pgxpool.Pool
}

func (h *Handles) Close() {
	if h == nil {
		return
	}
	if h.DB != nil {
		_ = h.DB.Close()
	}
	if h.Pool != nil {
		h.Pool.Close()
	}
}

func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Handles, error) {
	switch cfg.DBDriver {
	case migrations.DriverPostgres:
		if err := pginfra.RunMigrations(cfg.PostgresDSN(), logger); err != nil {
			return nil, fmt.Errorf("postgres migrations: %w", err)
		}
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return nil, err
		}
		logger.WithField("host", cfg.DBHost).WithField("db", cfg.DBName).Info("postgres store ready")
		return &Handles{Pool: pool}, nil
	case migrations.DriverSQLite:
		db, err := sqliteinfra.Open(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		logger.WithField("path", cfg.SQLitePath).Info("sqlite store ready")
		return &Handles{DB: db}, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}
}
