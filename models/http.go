// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of the register and login requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LogoutRequest is the body of the logout request.
type LogoutRequest struct {
	Username string `json:"username"`
}
