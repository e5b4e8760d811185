package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"burgerlog/internal/models"
)

func TestGetAdventureNone(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(`FROM next_adventure`).WillReturnError(sql.ErrNoRows)

	if _, err := s.GetAdventure(context.Background()); !errors.Is(err, ErrNoAdventure) {
		t.Fatalf("expected ErrNoAdventure, got %v", err)
	}
}

func TestReplaceAdventureDeletesPriorRow(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM next_adventure`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO next_adventure`).
		WithArgs(sqlmock.AnyArg(), "Junk Burger", nil, nil, nil, nil, models.UserDavid).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	adventure, err := s.ReplaceAdventure(context.Background(), models.NextAdventure{
		PlaceName: "Junk Burger",
		UpdatedBy: models.UserDavid,
	})
	if err != nil {
		t.Fatalf("ReplaceAdventure error: %v", err)
	}
	if adventure.ID == "" {
		t.Fatal("expected a generated adventure id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReplaceAdventureRollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM next_adventure`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO next_adventure`).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	if _, err := s.ReplaceAdventure(context.Background(), models.NextAdventure{
		PlaceName: "Junk Burger",
		UpdatedBy: models.UserDavid,
	}); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
