// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/models"
)

func newMockDB(t *testing.T, classifier ErrorClassificator, format sq.PlaceholderFormat) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		builder:            sq.StatementBuilder.PlaceholderFormat(format),
		errorClassificator: classifier,
		logger:             logger.Nop(),
	}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t, NewSQLiteErrorClassifier(), sq.Question)
	return &userRepository{db: db, logger: db.logger}, mock
}

func sqliteError(code sqlite3.ErrNo, extended sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: code, ExtendedCode: extended}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	ctx := context.Background()
	user := models.User{Username: "alice", PasswordHash: "hash"}

	mock.ExpectQuery(`INSERT INTO users \(username,password,logged_in\) VALUES \(\?,\?,\?\) RETURNING id`).
		WithArgs("alice", "hash", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", created.UserID)
	}
	if created.Username != "alice" || created.LoggedIn {
		t.Errorf("unexpected user: %+v", created)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_PostgresPlaceholders(t *testing.T) {
	db, mock := newMockDB(t, NewPostgresErrorClassifier(), sq.Dollar)
	repo := &userRepository{db: db, logger: db.logger}

	mock.ExpectQuery(`VALUES \(\$1,\$2,\$3\) RETURNING id`).
		WithArgs("alice", "hash", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	if _, err := repo.CreateUser(context.Background(), models.User{Username: "alice", PasswordHash: "hash"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		classifier ErrorClassificator
		dbErr      error
	}{
		{
			name:       "sqlite",
			classifier: NewSQLiteErrorClassifier(),
			dbErr:      sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintUnique),
		},
		{
			name:       "postgres",
			classifier: NewPostgresErrorClassifier(),
			dbErr:      &pgconn.PgError{Code: pgerrcode.UniqueViolation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, tt.classifier, sq.Question)
			repo := &userRepository{db: db, logger: db.logger}

			mock.ExpectQuery("INSERT INTO users").
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnError(tt.dbErr)

			_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
			if !errors.Is(err, ErrUsernameAlreadyExists) {
				t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
			}
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected wrapped ErrExecutingStatement, got %v", err)
	}
	if errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatal("generic failure must not be reported as duplicate")
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.
		NewRows([]string{"id", "username", "password", "logged_in"}).
		AddRow(3, "alice", "hash", true)

	mock.ExpectQuery(`SELECT id, username, password, logged_in FROM users WHERE username = \?`).
		WithArgs("alice").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 3 || found.PasswordHash != "hash" || !found.LoggedIn {
		t.Errorf("unexpected user: %+v", found)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByUsername_ConnectionFailure(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id").
		WithArgs("alice").
		WillReturnError(sqliteError(sqlite3.ErrCantOpen, 0))

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	if !errors.Is(err, ErrDatabaseUnavailable) {
		t.Fatalf("expected ErrDatabaseUnavailable, got %v", err)
	}
}

func TestFindUserByUsername_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows([]string{"id"}).AddRow(1) // intentionally wrong shape

	mock.ExpectQuery("SELECT id").
		WithArgs("alice").
		WillReturnRows(rows)

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestMarkLoggedIn(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`UPDATE users SET logged_in = \? WHERE id = \?`).
		WithArgs(true, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkLoggedIn(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkLoggedOut(t *testing.T) {
	tests := []struct {
		name     string
		result   sql.Result
		execErr  error
		expected error
	}{
		{name: "one row", result: sqlmock.NewResult(0, 1)},
		{name: "no rows", result: sqlmock.NewResult(0, 0), expected: ErrNoUserWasFound},
		{name: "exec failure", execErr: errors.New("boom"), expected: ErrExecutingStatement},
		{name: "rows affected failure", result: sqlmock.NewErrorResult(errors.New("boom")), expected: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			exp := mock.ExpectExec(`UPDATE users SET logged_in = \? WHERE username = \?`).
				WithArgs(false, "alice")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.MarkLoggedOut(context.Background(), "alice")
			if tt.expected == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}
