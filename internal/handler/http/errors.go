// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/MKhiriev/go-movie-catalog/models"

// Response messages. The wording is part of the wire contract with the
// mobile client and must not change.
const (
	msgRegisterSuccess   = "Berhasil Daftar"
	msgRegisterDuplicate = "Gagal Daftar: username sudah terdaftar"
	msgLoginSuccess      = "Berhasil Login"
	msgUserNotFound      = "User tidak ditemukan"
	msgWrongPassword     = "Password salah"
	msgLogoutSuccess     = "Sayonara"
	msgInvalidJSON       = "Invalid JSON was passed"
	msgInternalError     = "Internal Server Error"
)

var (
	// responseInvalidJSON is sent for any POST body that fails to decode.
	responseInvalidJSON = models.StatusResponse{Status: models.StatusError, Message: msgInvalidJSON}

	// responseInternalError is sent for every unclassified failure. The
	// underlying error is logged, never echoed.
	responseInternalError = models.StatusResponse{Status: models.StatusError, Message: msgInternalError}
)
