// Package overview assembles the dashboard payload: totals, per-user
// breakdowns, the top-three leaderboard, the rating streak and how long it
// has been since the pair last reviewed a place together.
package overview

import (
	"context"
	"errors"
	"time"

	"burgerlog/internal/models"
	"burgerlog/internal/stats"
	"burgerlog/internal/store"
)

// Store captures the persistence operations the dashboard needs.
type Store interface {
	Snapshot(ctx context.Context) ([]models.Place, []models.Rating, error)
	GetAdventure(ctx context.Context) (models.NextAdventure, error)
}

// Service computes the dashboard.
type Service struct {
	store Store
	now   func() time.Time
}

// New sets up a Service over the given store.
func New(s Store) *Service {
	return &Service{store: s, now: time.Now}
}

// UserStats is one user's slice of the dashboard.
type UserStats struct {
	stats.Summary
	FavoriteCategory stats.Category `json:"favorite_category"`
}

// Overview is the full dashboard payload.
type Overview struct {
	TotalPlaces         int                   `json:"total_places"`
	TotalRatings        int                   `json:"total_ratings"`
	Overall             stats.Summary         `json:"overall"`
	ByUser              map[string]UserStats  `json:"by_user"`
	TopPlaces           []stats.RankedPlace   `json:"top_places"`
	StreakDays          int                   `json:"streak_days"`
	DaysSinceJointVisit *int                  `json:"days_since_joint_visit"`
	NextAdventure       *models.NextAdventure `json:"next_adventure,omitempty"`
}

const leaderboardSize = 3

// Build loads a consistent snapshot and folds the whole dashboard out of it.
// Every aggregate comes from the same snapshot, so the numbers always agree
// with each other.
func (s *Service) Build(ctx context.Context) (Overview, error) {
	places, ratings, err := s.store.Snapshot(ctx)
	if err != nil {
		return Overview{}, err
	}

	byUser := make(map[string]UserStats, 2)
	perUser := stats.GroupByUser(ratings)
	for _, user := range models.Users() {
		summary := perUser[user]
		byUser[user] = UserStats{
			Summary:          summary,
			FavoriteCategory: stats.FavoriteCategory(summary),
		}
	}

	// The streak counts rating submissions, not visit dates: a backdated
	// visit should not fabricate past activity.
	times := make([]time.Time, 0, len(ratings))
	for _, r := range ratings {
		times = append(times, r.CreatedAt)
	}

	view := Overview{
		TotalPlaces:  len(places),
		TotalRatings: len(ratings),
		Overall:      stats.Summarize(ratings),
		ByUser:       byUser,
		TopPlaces:    stats.TopPlaces(places, ratings, leaderboardSize),
		StreakDays:   stats.ConsecutiveDayStreak(times),
	}

	if days, ok := stats.DaysSinceJointVisit(places, ratings, s.now()); ok {
		view.DaysSinceJointVisit = &days
	}

	adventure, err := s.store.GetAdventure(ctx)
	switch {
	case err == nil:
		view.NextAdventure = &adventure
	case !errors.Is(err, store.ErrNoAdventure):
		return Overview{}, err
	}

	return view, nil
}
