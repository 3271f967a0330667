// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// authService is the concrete implementation of AuthService.
// It registers accounts with bcrypt-hashed passwords and flips the stored
// logged-in flag on login and logout. No session token is issued.
type authService struct {
	// userRepository is the credential store.
	userRepository store.UserRepository

	// bcryptCost is the work factor used for new hashes.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository. The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register hashes the password and creates the account with logged_in = false.
//
// Returns:
//   - ErrDuplicateUser if the username is taken.
//   - ErrStorageFailure (wrapped) on any storage error.
//   - a wrapped hashing error if bcrypt rejects the password.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(credentials.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("password hashing failed")
		return err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return mapStoreError(err)
	}

	log.Info().Int64("user_id", user.UserID).Str("username", user.Username).Msg("user registered")
	return nil
}

// Login verifies the password against the stored hash and marks the account
// logged in.
//
// Returns:
//   - ErrUserNotFound if no account has this username.
//   - ErrInvalidCredentials if the password does not match.
//   - ErrStorageFailure (wrapped) on storage errors or an unreadable stored hash.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user lookup ended with error")
		return mapStoreError(err)
	}

	err = utils.ComparePassword(user.PasswordHash, credentials.Password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Debug().Str("username", credentials.Username).Msg("wrong password")
		return ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("stored password hash is unreadable")
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	if err = a.userRepository.MarkLoggedIn(ctx, user.UserID); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error marking user logged in")
		return mapStoreError(err)
	}

	return nil
}

// Logout clears the logged-in flag for username. Neither a password nor a
// prior login is required.
func (a *authService) Logout(ctx context.Context, username string) error {
	if err := a.userRepository.MarkLoggedOut(ctx, username); err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error marking user logged out")
		return mapStoreError(err)
	}

	return nil
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrDuplicateUser
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	default:
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
}
