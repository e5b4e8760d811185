package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"burgerlog/internal/models"
)

// ReviewSubmission is the one-shot payload behind the "new review" form:
// a place (found or created), a visit, a burger (found or created per place)
// and the submitting user's rating of that burger.
type ReviewSubmission struct {
	Place      models.Place
	VisitDate  time.Time
	VisitImage *string
	BurgerName string
	Rating     models.Rating
}

// Review is the persisted result of a submission.
type Review struct {
	Place  models.Place  `json:"place"`
	Visit  models.Visit  `json:"visit"`
	Burger models.Burger `json:"burger"`
	Rating models.Rating `json:"rating"`
}

// SubmitReview persists a full review in one transaction: place
// create-or-reuse (keyed by external place id, else case-insensitive name),
// visit creation, burger create-or-reuse and rating upsert. Recording the
// visit also clears a matching planned next adventure.
func (s *Store) SubmitReview(ctx context.Context, sub ReviewSubmission) (Review, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Review{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	place, err := s.findPlaceTx(ctx, tx, sub.Place)
	if errors.Is(err, ErrPlaceNotFound) {
		place, err = s.insertPlaceTx(ctx, tx, sub.Place)
	}
	if err != nil {
		return Review{}, err
	}

	visit, err := s.insertVisitTx(ctx, tx, models.Visit{
		PlaceID:   place.ID,
		VisitDate: sub.VisitDate,
		ImageURL:  sub.VisitImage,
		CreatedBy: sub.Rating.UserName,
	})
	if err != nil {
		return Review{}, err
	}

	burger, _, err := s.ensureBurgerTx(ctx, tx, place.ID, sub.BurgerName, sub.Rating.UserName)
	if err != nil {
		return Review{}, err
	}

	rating := sub.Rating
	rating.VisitID = visit.ID
	rating.BurgerID = burger.ID
	rating, err = s.upsertRatingTx(ctx, tx, rating)
	if err != nil {
		return Review{}, err
	}
	rating.PlaceID = place.ID

	if err := s.clearAdventureForPlaceTx(ctx, tx, place); err != nil {
		return Review{}, err
	}

	if err := tx.Commit(); err != nil {
		return Review{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return Review{Place: place, Visit: visit, Burger: burger, Rating: rating}, nil
}

// Snapshot returns all places and all ratings in one consistent read for the
// aggregation core. Grouping needs the complete rating set, so callers must
// not aggregate over partial fetches.
func (s *Store) Snapshot(ctx context.Context) ([]models.Place, []models.Rating, error) {
	places, err := s.ListPlaces(ctx)
	if err != nil {
		return nil, nil, err
	}
	ratings, err := s.ListRatings(ctx)
	if err != nil {
		return nil, nil, err
	}
	return places, ratings, nil
}
