// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/migrations"
)

// DB is the process-wide connection pool shared by every repository. It is
// constructed once at startup and injected; nothing in this package holds a
// global handle.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens and pings a pool for cfg.Driver.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate bootstraps the users table for the pool's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver, db.logger)
}

// classify wraps err with the store sentinel matching its driver classification.
func (db *DB) classify(err error, fallback error) error {
	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return ErrUsernameAlreadyExists
	case ConnectionFailure:
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}

func maxOpenConns(cfg config.DB, fallback int) int {
	if cfg.MaxOpenConns > 0 {
		return cfg.MaxOpenConns
	}
	return fallback
}
