// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable  = "users"
	moviesTable = "movies"

	columnID       = "id"
	columnUsername = "username"
	columnPassword = "password"
	columnLoggedIn = "logged_in"
)

// movieColumns is the fixed projection of the movies table. Scan order in
// [movieRepository.ListMovies] follows this slice.
var movieColumns = []string{
	"id",
	"adult",
	"backdrop_path",
	"genre_ids",
	"origin_country",
	"original_language",
	"original_name",
	"original_title",
	"overview",
	"popularity",
	"poster_path",
	"first_air_date",
	"release_date",
	"name",
	"title",
	"video",
	"vote_average",
	"vote_count",
}

func (db *DB) createUserQuery(username, passwordHash string) (string, []any, error) {
	return wrapBuild(db.builder.
		Insert(usersTable).
		Columns(columnUsername, columnPassword, columnLoggedIn).
		Values(username, passwordHash, false).
		Suffix("RETURNING " + columnID).
		ToSql())
}

func (db *DB) findUserByUsernameQuery(username string) (string, []any, error) {
	return wrapBuild(db.builder.
		Select(columnID, columnUsername, columnPassword, columnLoggedIn).
		From(usersTable).
		Where(sq.Eq{columnUsername: username}).
		ToSql())
}

func (db *DB) markLoggedInQuery(userID int64) (string, []any, error) {
	return wrapBuild(db.builder.
		Update(usersTable).
		Set(columnLoggedIn, true).
		Where(sq.Eq{columnID: userID}).
		ToSql())
}

func (db *DB) markLoggedOutQuery(username string) (string, []any, error) {
	return wrapBuild(db.builder.
		Update(usersTable).
		Set(columnLoggedIn, false).
		Where(sq.Eq{columnUsername: username}).
		ToSql())
}

func (db *DB) listMoviesQuery() (string, []any, error) {
	return wrapBuild(db.builder.
		Select(movieColumns...).
		From(moviesTable).
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
