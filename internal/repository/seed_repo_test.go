package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"watchlist/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSeedSQLite_Seed(t *testing.T) {
	movies := []models.Movie{{Title: "Leon", Year: "1994"}, {Title: "WALL-E", Year: "2008"}}

	t.Run("commits", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).WithArgs("Immensee", nil, nil).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertMovieSQL)).WithArgs("Leon", "1994").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertMovieSQL)).WithArgs("WALL-E", "2008").WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		if err := NewSeedSQLite(db).Seed(context.Background(), models.User{Name: "Immensee"}, movies); err != nil {
			t.Fatalf("Seed: %v", err)
		}
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).WithArgs("Immensee", nil, nil).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertMovieSQL)).WithArgs("Leon", "1994").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := NewSeedSQLite(db).Seed(context.Background(), models.User{Name: "Immensee"}, movies)
		if err == nil || !strings.Contains(err.Error(), "seed movie 1") {
			t.Fatalf("expected seed movie error, got %v", err)
		}
	})
}
