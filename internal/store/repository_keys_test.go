package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/models"
)

func newTestKeyRepo(t *testing.T) (*syncKeyRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &syncKeyRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestKeyCreate_WithSeedEntries(t *testing.T) {
	repo, mock, db := newTestKeyRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sync_keys").
		WithArgs("key-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO entries").
		WithArgs("key-1", "theme", "light", int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	seed := map[string]models.Entry{
		"theme": {Value: models.StringValue("light"), UpdatedAt: 100},
	}
	if err := repo.Create(context.Background(), "key-1", seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestKeyCreate_EmptySeed(t *testing.T) {
	repo, mock, db := newTestKeyRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sync_keys").
		WithArgs("key-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Create(context.Background(), "key-1", nil); err != nil {
		t.Fatalf("creating an empty group must succeed, got: %v", err)
	}
}

func TestKeyCreate_InsertErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestKeyRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sync_keys").
		WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), "key-1", nil)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestKeyCreate_ZeroRowsAffected(t *testing.T) {
	repo, mock, db := newTestKeyRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sync_keys").
		WithArgs("key-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), "key-1", nil)
	if !errors.Is(err, ErrSyncKeyNotCreated) {
		t.Fatalf("expected ErrSyncKeyNotCreated, got %v", err)
	}
}

func TestKeyExists(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{name: "known key", exists: true},
		{name: "unknown key", exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestKeyRepo(t)
			defer db.Close()

			rows := sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists)
			mock.ExpectQuery("SELECT EXISTS").
				WithArgs("key-1").
				WillReturnRows(rows)

			got, err := repo.Exists(context.Background(), "key-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.exists {
				t.Errorf("expected exists=%v, got %v", tt.exists, got)
			}
		})
	}
}

func TestKeyExists_QueryError(t *testing.T) {
	repo, mock, db := newTestKeyRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnError(errors.New("db down"))

	_, err := repo.Exists(context.Background(), "key-1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
