// Package reviews implements the one-shot review submission workflow: place
// create-or-reuse, visit, burger create-or-reuse and rating upsert.
package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"burgerlog/internal/models"
	"burgerlog/internal/store"
)

var (
	// ErrUnknownUser indicates a user name outside the two fixed identities.
	ErrUnknownUser = errors.New("unknown user")
	// ErrInvalidReview indicates the submission failed validation.
	ErrInvalidReview = errors.New("invalid review")
)

// Store captures the persistence operations the review workflow needs.
type Store interface {
	FindPlace(ctx context.Context, place models.Place) (models.Place, error)
	SubmitReview(ctx context.Context, sub store.ReviewSubmission) (store.Review, error)
}

// Service coordinates review submissions.
type Service struct {
	store Store
}

// New sets up a Service over the given store.
func New(s Store) *Service {
	return &Service{store: s}
}

// Submission is a validated review request.
type Submission struct {
	UserName   string
	PlaceName  string
	Address    *string
	Latitude   *float64
	Longitude  *float64
	ExternalID *string
	ImageURL   *string
	VisitDate  time.Time
	BurgerName string
	Meat       int
	Cheese     int
	Juiciness  int
	Bread      int
	Sauce      int
	Fries      *int
	Comment    *string
	Price      *float64
}

// Submit validates and persists a review. The acting user is an explicit
// field, never ambient state.
func (s *Service) Submit(ctx context.Context, sub Submission) (store.Review, error) {
	if !models.ValidUser(sub.UserName) {
		return store.Review{}, ErrUnknownUser
	}
	if strings.TrimSpace(sub.PlaceName) == "" {
		return store.Review{}, fmt.Errorf("%w: place name is required", ErrInvalidReview)
	}
	if strings.TrimSpace(sub.BurgerName) == "" {
		return store.Review{}, fmt.Errorf("%w: burger name is required", ErrInvalidReview)
	}
	for _, score := range []int{sub.Meat, sub.Cheese, sub.Juiciness, sub.Bread, sub.Sauce} {
		if score < 0 || score > 5 {
			return store.Review{}, fmt.Errorf("%w: scores must be between 0 and 5", ErrInvalidReview)
		}
	}
	if sub.Fries != nil && (*sub.Fries < 0 || *sub.Fries > 5) {
		return store.Review{}, fmt.Errorf("%w: scores must be between 0 and 5", ErrInvalidReview)
	}
	if sub.Price != nil && *sub.Price < 0 {
		return store.Review{}, fmt.Errorf("%w: price cannot be negative", ErrInvalidReview)
	}

	place := models.Place{
		Name:            sub.PlaceName,
		Address:         sub.Address,
		Latitude:        sub.Latitude,
		Longitude:       sub.Longitude,
		ExternalPlaceID: sub.ExternalID,
		ImageURL:        sub.ImageURL,
		CreatedBy:       sub.UserName,
	}

	// A brand-new place must come with a photo; later reviews may skip it.
	if sub.ImageURL == nil {
		if _, err := s.store.FindPlace(ctx, place); err != nil {
			if errors.Is(err, store.ErrPlaceNotFound) {
				return store.Review{}, fmt.Errorf("%w: a photo is required for a new place", ErrInvalidReview)
			}
			return store.Review{}, err
		}
	}

	visitDate := sub.VisitDate
	if visitDate.IsZero() {
		visitDate = time.Now()
	}

	return s.store.SubmitReview(ctx, store.ReviewSubmission{
		Place: place,
		VisitDate:  visitDate,
		VisitImage: sub.ImageURL,
		BurgerName: sub.BurgerName,
		Rating: models.Rating{
			UserName:  sub.UserName,
			Meat:      sub.Meat,
			Cheese:    sub.Cheese,
			Juiciness: sub.Juiciness,
			Bread:     sub.Bread,
			Sauce:     sub.Sauce,
			Fries:     sub.Fries,
			Comment:   sub.Comment,
			Price:     sub.Price,
		},
	})
}
