// Package places exposes the place catalog: browsing with search, filter and
// sort, plus edits and deletion.
package places

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"burgerlog/internal/models"
	"burgerlog/internal/stats"
	"burgerlog/internal/store"
)

var (
	// ErrInvalidPlace indicates a place edit failed validation.
	ErrInvalidPlace = errors.New("invalid place")
	// ErrUnknownUser indicates a user filter outside the two fixed identities.
	ErrUnknownUser = errors.New("unknown user")
)

// Store captures the persistence operations the place catalog needs.
type Store interface {
	Snapshot(ctx context.Context) ([]models.Place, []models.Rating, error)
	GetPlace(ctx context.Context, id string) (models.Place, error)
	UpdatePlace(ctx context.Context, id string, place models.Place) (models.Place, error)
	DeletePlace(ctx context.Context, id string) error
	ListRatingsByPlace(ctx context.Context, placeID string) ([]models.Rating, error)
	ListBurgersByPlace(ctx context.Context, placeID string) ([]models.Burger, error)
}

// Service serves the place catalog.
type Service struct {
	store Store
}

// New sets up a Service over the given store.
func New(s Store) *Service {
	return &Service{store: s}
}

// PlaceView is a catalog entry decorated with its aggregate score.
type PlaceView struct {
	models.Place
	Score       float64 `json:"score"`
	RatingCount int     `json:"rating_count"`
}

// List returns the catalog filtered and ordered by the query. The score on
// each entry is the combined place score, with both users weighing equally.
func (s *Service) List(ctx context.Context, q stats.Query) ([]PlaceView, error) {
	if q.User != "" && q.User != stats.UserAll && !models.ValidUser(q.User) {
		return nil, ErrUnknownUser
	}

	places, ratings, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	byPlace := make(map[string][]models.Rating)
	for _, r := range ratings {
		byPlace[r.PlaceID] = append(byPlace[r.PlaceID], r)
	}

	ordered := stats.BuildView(places, ratings, q)
	views := make([]PlaceView, 0, len(ordered))
	for _, p := range ordered {
		views = append(views, PlaceView{
			Place:       p,
			Score:       stats.CombinedPlaceScore(byPlace[p.ID]),
			RatingCount: len(byPlace[p.ID]),
		})
	}
	return views, nil
}

// Get retrieves a single place.
func (s *Service) Get(ctx context.Context, id string) (models.Place, error) {
	return s.store.GetPlace(ctx, id)
}

// Update edits a place's name, location and image.
func (s *Service) Update(ctx context.Context, id string, place models.Place) (models.Place, error) {
	if strings.TrimSpace(place.Name) == "" {
		return models.Place{}, fmt.Errorf("%w: name is required", ErrInvalidPlace)
	}
	return s.store.UpdatePlace(ctx, id, place)
}

// Delete removes a place and everything recorded under it.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeletePlace(ctx, id)
}

// Ratings returns every rating attached to a place.
func (s *Service) Ratings(ctx context.Context, placeID string) ([]models.Rating, error) {
	if _, err := s.store.GetPlace(ctx, placeID); err != nil {
		return nil, err
	}
	return s.store.ListRatingsByPlace(ctx, placeID)
}

// Burgers returns the burgers recorded at a place.
func (s *Service) Burgers(ctx context.Context, placeID string) ([]models.Burger, error) {
	if _, err := s.store.GetPlace(ctx, placeID); err != nil {
		return nil, err
	}
	return s.store.ListBurgersByPlace(ctx, placeID)
}

var _ Store = (*store.Store)(nil)
