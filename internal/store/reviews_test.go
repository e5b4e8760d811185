package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"burgerlog/internal/models"
)

func TestSubmitReviewCreatesEverythingInOneTx(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	now := time.Now()

	mock.ExpectBegin()
	// No place matches the name, so one is created.
	mock.ExpectQuery(`SELECT (.+) FROM burger_places\s+WHERE LOWER\(name\) = LOWER\(\$1\)`).
		WithArgs("Goiko").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO burger_places`).
		WithArgs(sqlmock.AnyArg(), "Goiko", nil, nil, nil, nil, nil, models.UserLolo).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery(`INSERT INTO visits`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), nil, models.UserLolo).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	// The burger name does not exist at this place yet.
	mock.ExpectQuery(`SELECT (.+) FROM burgers\s+WHERE place_id = \$1 AND LOWER\(name\) = LOWER\(\$2\)`).
		WithArgs(sqlmock.AnyArg(), "Kevin Bacon").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO burgers`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "Kevin Bacon", models.UserLolo).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery(`INSERT INTO visit_ratings`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), models.UserLolo,
			5, 4, 3, 4, 5, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("r1", now))
	// Visiting the place clears a matching planned adventure.
	mock.ExpectExec(`DELETE FROM next_adventure\s+WHERE LOWER\(place_name\) = LOWER\(\$1\)`).
		WithArgs("Goiko").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	review, err := s.SubmitReview(context.Background(), ReviewSubmission{
		Place:      models.Place{Name: "Goiko", CreatedBy: models.UserLolo},
		VisitDate:  now,
		BurgerName: "Kevin Bacon",
		Rating: models.Rating{
			UserName: models.UserLolo,
			Meat:     5, Cheese: 4, Juiciness: 3, Bread: 4, Sauce: 5,
		},
	})
	if err != nil {
		t.Fatalf("SubmitReview error: %v", err)
	}

	if review.Place.Name != "Goiko" {
		t.Fatalf("unexpected place: %+v", review.Place)
	}
	if review.Rating.ID != "r1" {
		t.Fatalf("expected rating id r1, got %q", review.Rating.ID)
	}
	if review.Rating.PlaceID != review.Place.ID {
		t.Fatal("expected rating to carry the place reference")
	}
	if review.Visit.PlaceID != review.Place.ID {
		t.Fatal("expected visit to reference the created place")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitReviewReusesExistingPlaceAndBurger(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM burger_places\s+WHERE external_place_id = \$1`).
		WithArgs("gmaps-9").
		WillReturnRows(placeRow("p1", "Goiko"))
	mock.ExpectQuery(`INSERT INTO visits`).
		WithArgs(sqlmock.AnyArg(), "p1", sqlmock.AnyArg(), nil, models.UserDavid).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery(`SELECT (.+) FROM burgers\s+WHERE place_id = \$1 AND LOWER\(name\) = LOWER\(\$2\)`).
		WithArgs("p1", "kevin bacon").
		WillReturnRows(sqlmock.NewRows([]string{"id", "place_id", "name", "created_by", "created_at"}).
			AddRow("b1", "p1", "Kevin Bacon", models.UserLolo, now))
	mock.ExpectQuery(`INSERT INTO visit_ratings`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "b1", models.UserDavid,
			3, 3, 3, 3, 3, 2, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("r2", now))
	mock.ExpectExec(`DELETE FROM next_adventure\s+WHERE external_place_id = \$1 OR LOWER\(place_name\) = LOWER\(\$2\)`).
		WithArgs("gmaps-9", "Goiko").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	fries := 2
	review, err := s.SubmitReview(context.Background(), ReviewSubmission{
		Place:      models.Place{Name: "Goiko", ExternalPlaceID: strPtr("gmaps-9"), CreatedBy: models.UserDavid},
		VisitDate:  now,
		BurgerName: "kevin bacon",
		Rating: models.Rating{
			UserName: models.UserDavid,
			Meat:     3, Cheese: 3, Juiciness: 3, Bread: 3, Sauce: 3,
			Fries: &fries,
		},
	})
	if err != nil {
		t.Fatalf("SubmitReview error: %v", err)
	}

	if review.Place.ID != "p1" {
		t.Fatalf("expected reused place p1, got %q", review.Place.ID)
	}
	if review.Burger.ID != "b1" {
		t.Fatalf("expected reused burger b1, got %q", review.Burger.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
