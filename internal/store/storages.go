// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
)

// Storages groups the repositories built on top of one shared pool.
type Storages struct {
	DB              *DB
	UserRepository  UserRepository
	MovieRepository MovieRepository
}

// NewStorages opens the database, bootstraps the users table and builds the
// repositories. The pool is closed again if migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		DB:              db,
		UserRepository:  NewUserRepository(db, log),
		MovieRepository: NewMovieRepository(db, log),
	}, nil
}

// Close releases the shared pool.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
