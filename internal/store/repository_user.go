// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup and the logged-in flag on the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account with logged_in = false and returns it with
// the assigned UserID.
//
// Error handling:
//   - unique constraint on username → [ErrUsernameAlreadyExists].
//   - unreachable database → [ErrDatabaseUnavailable].
//   - anything else → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.createUserQuery(user.Username, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	// create user in db
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.classify(err, ErrExecutingStatement)
	}
	user.LoggedIn = false

	return user, nil
}

// FindUserByUsername retrieves the account whose username matches exactly.
// [sql.ErrNoRows] is reported as [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findUserByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building query")
		return models.User{}, err
	}

	var foundUser models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordHash, &foundUser.LoggedIn)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*userRepository.FindUserByUsername").Str("username", username).Msg("user not found")
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error scanning user")
		return models.User{}, r.db.classify(err, ErrScanningRow)
	}

	return foundUser, nil
}

// MarkLoggedIn sets logged_in = true for the account with the given id.
func (r *userRepository) MarkLoggedIn(ctx context.Context, userID int64) error {
	query, args, err := r.db.markLoggedInQuery(userID)
	if err != nil {
		return err
	}
	return r.execAffectingUser(ctx, "*userRepository.MarkLoggedIn", query, args)
}

// MarkLoggedOut sets logged_in = false for the account with the given
// username. Zero matched rows is reported as [ErrNoUserWasFound].
func (r *userRepository) MarkLoggedOut(ctx context.Context, username string) error {
	query, args, err := r.db.markLoggedOutQuery(username)
	if err != nil {
		return err
	}
	return r.execAffectingUser(ctx, "*userRepository.MarkLoggedOut", query, args)
}

func (r *userRepository) execAffectingUser(ctx context.Context, fn, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing update")
		return r.db.classify(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
