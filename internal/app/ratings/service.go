// Package ratings manages individual ratings after submission. Each rating
// belongs to exactly one of the two users, and only the owner may change or
// remove it.
package ratings

import (
	"context"
	"errors"
	"fmt"

	"burgerlog/internal/models"
	"burgerlog/internal/store"
)

var (
	// ErrUnknownUser indicates a user name outside the two fixed identities.
	ErrUnknownUser = errors.New("unknown user")
	// ErrInvalidRating indicates a rating edit failed validation.
	ErrInvalidRating = errors.New("invalid rating")
)

// Store captures the persistence operations rating management needs.
type Store interface {
	UpdateRating(ctx context.Context, id, userName string, rating models.Rating) (models.Rating, error)
	DeleteRating(ctx context.Context, id, userName string) error
}

// Service manages ratings.
type Service struct {
	store Store
}

// New sets up a Service over the given store.
func New(s Store) *Service {
	return &Service{store: s}
}

// Update edits a rating. The acting user must match the rating's owner; a
// mismatch surfaces as store.ErrRatingNotFound.
func (s *Service) Update(ctx context.Context, id, userName string, rating models.Rating) (models.Rating, error) {
	if !models.ValidUser(userName) {
		return models.Rating{}, ErrUnknownUser
	}
	for _, score := range []int{rating.Meat, rating.Cheese, rating.Juiciness, rating.Bread, rating.Sauce} {
		if score < 0 || score > 5 {
			return models.Rating{}, fmt.Errorf("%w: scores must be between 0 and 5", ErrInvalidRating)
		}
	}
	if rating.Fries != nil && (*rating.Fries < 0 || *rating.Fries > 5) {
		return models.Rating{}, fmt.Errorf("%w: scores must be between 0 and 5", ErrInvalidRating)
	}
	return s.store.UpdateRating(ctx, id, userName, rating)
}

// Delete removes a rating owned by the acting user.
func (s *Service) Delete(ctx context.Context, id, userName string) error {
	if !models.ValidUser(userName) {
		return ErrUnknownUser
	}
	return s.store.DeleteRating(ctx, id, userName)
}

var _ Store = (*store.Store)(nil)
