// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-movie-catalog/internal/service"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// errorResponse is the status and envelope sent when a service error
// matches target.
type errorResponse struct {
	target error
	status int
	body   models.StatusResponse
}

var registerErrors = []errorResponse{
	{
		target: service.ErrDuplicateUser,
		status: http.StatusBadRequest,
		body:   models.StatusResponse{Status: models.StatusFailed, Message: msgRegisterDuplicate},
	},
}

var loginErrors = []errorResponse{
	{
		target: service.ErrUserNotFound,
		status: http.StatusUnauthorized,
		body:   models.StatusResponse{Status: models.StatusFailed, Message: msgUserNotFound},
	},
	{
		target: service.ErrInvalidCredentials,
		status: http.StatusUnauthorized,
		body:   models.StatusResponse{Status: models.StatusFailed, Message: msgWrongPassword},
	},
}

var logoutErrors = []errorResponse{
	{
		target: service.ErrUserNotFound,
		status: http.StatusBadRequest,
		body:   models.StatusResponse{Status: models.StatusError, Message: msgUserNotFound},
	},
}

// responseFromError picks the first entry of table matching err. Anything
// else, ErrStorageFailure included, becomes 500 with the fixed envelope.
func responseFromError(err error, table []errorResponse) (int, models.StatusResponse) {
	for _, e := range table {
		if errors.Is(err, e.target) {
			return e.status, e.body
		}
	}
	return http.StatusInternalServerError, responseInternalError
}
