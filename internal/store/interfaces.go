// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-movie-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock

// UserRepository is the credential store: read/write access to rows of the
// users table.
type UserRepository interface {
	// CreateUser inserts user with logged_in = false and returns it with the
	// assigned UserID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns the row for username or [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// MarkLoggedIn sets logged_in = true for the row with userID.
	MarkLoggedIn(ctx context.Context, userID int64) error
	// MarkLoggedOut sets logged_in = false for username, returning
	// [ErrNoUserWasFound] when no row matched.
	MarkLoggedOut(ctx context.Context, username string) error
}

// MovieRepository is read-only access to the externally populated movies table.
type MovieRepository interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
}

// ErrorClassificator maps a driver-specific error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
