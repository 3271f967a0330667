// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/models"
)

type catalogService struct {
	movieRepository store.MovieRepository

	// imageBaseURL has no trailing slash; stored paths start with one.
	imageBaseURL string

	logger *logger.Logger
}

func NewCatalogService(movieRepository store.MovieRepository, cfg config.App, logger *logger.Logger) CatalogService {
	return &catalogService{
		movieRepository: movieRepository,
		imageBaseURL:    strings.TrimSuffix(cfg.ImageBaseURL, "/"),
		logger:          logger,
	}
}

// ListMovies returns the whole catalog with backdrop and poster paths turned
// into absolute image URLs. Null paths stay null. Path pointers are replaced,
// never written through.
func (c *catalogService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := c.movieRepository.ListMovies(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing movies")
		return nil, mapStoreError(err)
	}

	result := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		m.BackdropPath = c.imageURL(m.BackdropPath)
		m.PosterPath = c.imageURL(m.PosterPath)
		result = append(result, m)
	}

	return result, nil
}

func (c *catalogService) imageURL(path *string) *string {
	if path == nil {
		return nil
	}
	url := c.imageBaseURL + *path
	return &url
}
