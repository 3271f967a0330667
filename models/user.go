// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account row of the credential store.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the auto-incremented primary key.
	UserID int64 `json:"-"`

	// Username is the unique login name.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It is never the plaintext password and never leaves the server.
	PasswordHash string `json:"-"`

	// LoggedIn is the stored login flag flipped by login and logout.
	LoggedIn bool `json:"logged_in"`
}
