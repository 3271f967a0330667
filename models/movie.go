// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Movie is a read-only catalog entry. Rows are populated out of band in
// TMDB's shape; nullable columns are pointers so that they encode as JSON null.
type Movie struct {
	ID               int64   `json:"id"`
	Adult            bool    `json:"adult"`
	BackdropPath     *string `json:"backdrop_path"`
	GenreIDs         string  `json:"genre_ids"`
	OriginCountry    string  `json:"origin_country"`
	OriginalLanguage *string `json:"original_language"`
	OriginalName     *string `json:"original_name"`
	OriginalTitle    *string `json:"original_title"`
	Overview         *string `json:"overview"`
	Popularity       float64 `json:"popularity"`
	PosterPath       *string `json:"poster_path"`
	FirstAirDate     *string `json:"first_air_date"`
	ReleaseDate      *string `json:"release_date"`
	Name             *string `json:"name"`
	Title            *string `json:"title"`
	Video            bool    `json:"video"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
}
