// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Domain errors returned by the services. Handlers map each one to an HTTP
// status and a fixed message; wrapped causes are only logged.
var (
	ErrDuplicateUser      = errors.New("username is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStorageFailure     = errors.New("storage failure")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
