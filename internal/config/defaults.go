// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"

	defaultHTTPAddress     = "0.0.0.0:8080"
	defaultDSN             = "./movies.db"
	defaultImageBaseURL    = "https://image.tmdb.org/t/p/original"
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
)

// defaultConfig returns the values used for every field no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			BcryptCost:   bcrypt.DefaultCost,
			ImageBaseURL: defaultImageBaseURL,
			LogLevel:     defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    defaultDSN,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}
