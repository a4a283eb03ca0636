package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertQ  = `(?s)^INSERT\s+INTO\s+users\s*\(email,\s*name,\s*surname,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id,\s*created_at\s*$`
	byEmailQ = `(?s)^SELECT\s+id,\s*email,\s*name,\s*surname,\s*password_hash,\s*created_at\s+FROM\s+users\s+WHERE\s+lower\(email\)\s*=\s*lower\(\$1\)\s*$`
	byIDQ    = `(?s)^SELECT\s+id,\s*email,\s*name,\s*surname,\s*password_hash,\s*created_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
)

var userCols = []string{"id", "email", "name", "surname", "password_hash", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func newUser() *models.User {
	return &models.User{Email: "ana@example.com", Name: "Ana", Surname: "Silva", PasswordHash: []byte("hash")}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(insertQ).
		WithArgs("ana@example.com", "Ana", "Silva", []byte("hash")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))

	got, err := repo.Create(context.Background(), newUser())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || got.Email != "ana@example.com" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key"})

	_, err := repo.Create(context.Background(), newUser())
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), newUser())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(userCols).
		AddRow(int64(7), "ana@example.com", "Ana", "Silva", []byte("hash"), time.Now())
	mock.ExpectQuery(byEmailQ).
		WithArgs("ANA@example.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "ANA@example.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != 7 || got.Name != "Ana" || string(got.PasswordHash) != "hash" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byEmailQ).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		rows := sqlmock.NewRows(userCols).
			AddRow(int64(9), "bo@example.com", "Bo", "Li", []byte("h"), time.Now())
		mock.ExpectQuery(byIDQ).WithArgs(int64(9)).WillReturnRows(rows)

		got, err := repo.GetByID(context.Background(), 9)
		if err != nil {
			t.Fatalf("GetByID error: %v", err)
		}
		if got.Email != "bo@example.com" {
			t.Fatalf("unexpected user: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(byIDQ).WithArgs(int64(1)).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 1)
		if !errors.Is(err, common.ErrorNotFound) {
			t.Fatalf("want common.ErrorNotFound, got %v", err)
		}
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(byIDQ).WithArgs(int64(1)).WillReturnError(errors.New("db err"))

		_, err := repo.GetByID(context.Background(), 1)
		if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})
}
