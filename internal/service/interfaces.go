// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-movie-catalog/models"
)

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) error
	Login(ctx context.Context, credentials models.Credentials) error
	Logout(ctx context.Context, username string) error
}

type CatalogService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
