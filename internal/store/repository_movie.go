// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// movieRepository reads the externally populated "movies" table. It never
// writes to it.
type movieRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		db:     db,
		logger: logger,
	}
}

// ListMovies returns every row of the movies table in storage order. Image
// paths are returned as stored. An empty table yields an empty, non-nil slice.
func (r *movieRepository) ListMovies(ctx context.Context) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listMoviesQuery()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error querying movies")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		var m models.Movie
		if err = rows.Scan(
			&m.ID,
			&m.Adult,
			&m.BackdropPath,
			&m.GenreIDs,
			&m.OriginCountry,
			&m.OriginalLanguage,
			&m.OriginalName,
			&m.OriginalTitle,
			&m.Overview,
			&m.Popularity,
			&m.PosterPath,
			&m.FirstAirDate,
			&m.ReleaseDate,
			&m.Name,
			&m.Title,
			&m.Video,
			&m.VoteAverage,
			&m.VoteCount,
		); err != nil {
			log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error scanning movie")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		movies = append(movies, m)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error iterating movies")
		return nil, r.db.classify(err, ErrScanningRows)
	}

	return movies, nil
}
