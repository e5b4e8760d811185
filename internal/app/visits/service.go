// Package visits manages recorded visits after the fact: listing, date and
// photo corrections, and removal.
package visits

import (
	"context"
	"errors"

	"burgerlog/internal/models"
	"burgerlog/internal/store"
)

// ErrInvalidVisit indicates a visit edit failed validation.
var ErrInvalidVisit = errors.New("invalid visit")

// Store captures the persistence operations visit management needs.
type Store interface {
	CreateVisit(ctx context.Context, visit models.Visit) (models.Visit, error)
	ListVisits(ctx context.Context) ([]models.Visit, error)
	ListVisitsByPlace(ctx context.Context, placeID string) ([]models.Visit, error)
	UpdateVisit(ctx context.Context, id string, visit models.Visit) (models.Visit, error)
	DeleteVisit(ctx context.Context, id string) error
}

// Service manages visits.
type Service struct {
	store Store
}

// New sets up a Service over the given store.
func New(s Store) *Service {
	return &Service{store: s}
}

// Create records a bare visit against an existing place. Most visits arrive
// through the review workflow instead; this covers "we went back but nobody
// rated anything".
func (s *Service) Create(ctx context.Context, visit models.Visit) (models.Visit, error) {
	if !models.ValidUser(visit.CreatedBy) {
		return models.Visit{}, ErrInvalidVisit
	}
	if visit.PlaceID == "" {
		return models.Visit{}, ErrInvalidVisit
	}
	return s.store.CreateVisit(ctx, visit)
}

// List returns every visit, most recent first.
func (s *Service) List(ctx context.Context) ([]models.Visit, error) {
	return s.store.ListVisits(ctx)
}

// ListByPlace returns a place's visits, most recent first.
func (s *Service) ListByPlace(ctx context.Context, placeID string) ([]models.Visit, error) {
	return s.store.ListVisitsByPlace(ctx, placeID)
}

// Update edits a visit's date and photo.
func (s *Service) Update(ctx context.Context, id string, visit models.Visit) (models.Visit, error) {
	if visit.VisitDate.IsZero() {
		return models.Visit{}, ErrInvalidVisit
	}
	return s.store.UpdateVisit(ctx, id, visit)
}

// Delete removes a visit and the ratings recorded on it.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteVisit(ctx, id)
}

var _ Store = (*store.Store)(nil)
