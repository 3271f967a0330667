// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/models"
)

const createMoviesTable = `CREATE TABLE movies (
	id INTEGER PRIMARY KEY,
	adult BOOLEAN NOT NULL,
	backdrop_path TEXT,
	genre_ids TEXT NOT NULL,
	origin_country TEXT NOT NULL,
	original_language TEXT,
	original_name TEXT,
	original_title TEXT,
	overview TEXT,
	popularity REAL NOT NULL,
	poster_path TEXT,
	first_air_date TEXT,
	release_date TEXT,
	name TEXT,
	title TEXT,
	video BOOLEAN NOT NULL,
	vote_average REAL NOT NULL,
	vote_count INTEGER NOT NULL
)`

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "data", "movies.db"),
	}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}

func TestStorages_SQLiteUserLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	assert.Equal(t, 1, s.DB.Stats().MaxOpenConnections)

	created, err := s.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Positive(t, created.UserID)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	// usernames are case sensitive
	_, err = s.UserRepository.CreateUser(ctx, models.User{Username: "Alice", PasswordHash: "hash"})
	require.NoError(t, err)

	found, err := s.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.False(t, found.LoggedIn)

	require.NoError(t, s.UserRepository.MarkLoggedIn(ctx, found.UserID))
	found, err = s.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, found.LoggedIn)

	require.NoError(t, s.UserRepository.MarkLoggedOut(ctx, "alice"))
	found, err = s.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, found.LoggedIn)

	// already logged out still matches the row
	assert.NoError(t, s.UserRepository.MarkLoggedOut(ctx, "alice"))

	assert.ErrorIs(t, s.UserRepository.MarkLoggedOut(ctx, "ghost"), ErrNoUserWasFound)
	_, err = s.UserRepository.FindUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestStorages_SQLiteConcurrentCreateUser(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	const workers = 16
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		succeeded  int
		duplicates int
	)

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.UserRepository.CreateUser(ctx, models.User{Username: "bob", PasswordHash: fmt.Sprint(i)})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrUsernameAlreadyExists):
				duplicates++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, duplicates)
}

func TestStorages_SQLiteListMovies(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	// movies is populated out of band; without it the query fails
	_, err := s.MovieRepository.ListMovies(ctx)
	require.Error(t, err)

	_, err = s.DB.ExecContext(ctx, createMoviesTable)
	require.NoError(t, err)

	movies, err := s.MovieRepository.ListMovies(ctx)
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)

	_, err = s.DB.ExecContext(ctx, `INSERT INTO movies VALUES
		(10, 0, '/abc.jpg', '[28,12]', 'US', 'en', NULL, 'Orig', 'Plot', 12.5, NULL, NULL, '2021-03-04', NULL, 'Title', 0, 7.9, 321)`)
	require.NoError(t, err)

	movies, err = s.MovieRepository.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 1)

	m := movies[0]
	assert.Equal(t, int64(10), m.ID)
	require.NotNil(t, m.BackdropPath)
	assert.Equal(t, "/abc.jpg", *m.BackdropPath)
	assert.Nil(t, m.PosterPath)
	assert.Nil(t, m.Name)
	require.NotNil(t, m.Title)
	assert.Equal(t, "Title", *m.Title)
	assert.Equal(t, int64(321), m.VoteCount)
}
