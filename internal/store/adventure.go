package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"burgerlog/internal/models"
)

// GetAdventure returns the single planned next adventure, or ErrNoAdventure
// when nothing is planned.
func (s *Store) GetAdventure(ctx context.Context) (models.NextAdventure, error) {
	var a models.NextAdventure
	err := s.db.QueryRowContext(ctx, `
		SELECT id, place_name, latitude, longitude, address, external_place_id, updated_by, updated_at
		FROM next_adventure
		LIMIT 1
	`).Scan(&a.ID, &a.PlaceName, &a.Latitude, &a.Longitude, &a.Address,
		&a.ExternalPlaceID, &a.UpdatedBy, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NextAdventure{}, ErrNoAdventure
	}
	if err != nil {
		return models.NextAdventure{}, fmt.Errorf("select next adventure: %w", err)
	}
	return a, nil
}

// ReplaceAdventure swaps in a new planned next adventure, deleting any prior
// row. The table is a replace-only singleton, not a history.
func (s *Store) ReplaceAdventure(ctx context.Context, adventure models.NextAdventure) (models.NextAdventure, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.NextAdventure{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM next_adventure`); err != nil {
		return models.NextAdventure{}, fmt.Errorf("clear next adventure: %w", err)
	}

	adventure.ID = uuid.NewString()
	err = tx.QueryRowContext(ctx, `
		INSERT INTO next_adventure (id, place_name, latitude, longitude, address, external_place_id, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING updated_at
	`, adventure.ID, adventure.PlaceName, adventure.Latitude, adventure.Longitude,
		adventure.Address, adventure.ExternalPlaceID, adventure.UpdatedBy).Scan(&adventure.UpdatedAt)
	if err != nil {
		return models.NextAdventure{}, fmt.Errorf("insert next adventure: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.NextAdventure{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return adventure, nil
}

// clearAdventureForPlaceTx deletes the planned adventure once the tracked
// place gets visited, matching by external place id and falling back to a
// case-insensitive name match.
func (s *Store) clearAdventureForPlaceTx(ctx context.Context, q querier, place models.Place) error {
	var err error
	if place.ExternalPlaceID != nil && *place.ExternalPlaceID != "" {
		_, err = q.ExecContext(ctx, `
			DELETE FROM next_adventure
			WHERE external_place_id = $1 OR LOWER(place_name) = LOWER($2)
		`, *place.ExternalPlaceID, place.Name)
	} else {
		_, err = q.ExecContext(ctx, `
			DELETE FROM next_adventure
			WHERE LOWER(place_name) = LOWER($1)
		`, place.Name)
	}
	if err != nil {
		return fmt.Errorf("clear visited adventure: %w", err)
	}
	return nil
}
