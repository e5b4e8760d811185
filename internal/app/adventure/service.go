// Package adventure manages the single planned "next adventure": the one
// place the pair intends to try next.
package adventure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"burgerlog/internal/models"
	"burgerlog/internal/store"
)

var (
	// ErrUnknownUser indicates a user name outside the two fixed identities.
	ErrUnknownUser = errors.New("unknown user")
	// ErrInvalidAdventure indicates the plan failed validation.
	ErrInvalidAdventure = errors.New("invalid adventure")
)

// Store captures the persistence operations the plan needs.
type Store interface {
	GetAdventure(ctx context.Context) (models.NextAdventure, error)
	ReplaceAdventure(ctx context.Context, adventure models.NextAdventure) (models.NextAdventure, error)
}

// Service manages the planned next adventure.
type Service struct {
	store Store
}

// New sets up a Service over the given store.
func New(s Store) *Service {
	return &Service{store: s}
}

// Current returns the planned adventure, or store.ErrNoAdventure when nothing
// is planned.
func (s *Service) Current(ctx context.Context) (models.NextAdventure, error) {
	return s.store.GetAdventure(ctx)
}

// Plan replaces the current plan with a new one. There is no separate create
// or update; whoever plans last wins, and the previous plan is discarded.
func (s *Service) Plan(ctx context.Context, adventure models.NextAdventure) (models.NextAdventure, error) {
	if !models.ValidUser(adventure.UpdatedBy) {
		return models.NextAdventure{}, ErrUnknownUser
	}
	if strings.TrimSpace(adventure.PlaceName) == "" {
		return models.NextAdventure{}, fmt.Errorf("%w: place name is required", ErrInvalidAdventure)
	}
	return s.store.ReplaceAdventure(ctx, adventure)
}

var _ Store = (*store.Store)(nil)
