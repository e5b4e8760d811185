package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"burgerlog/internal/models"
)

// EnsureBurger finds a place's burger by case-insensitive name and creates
// it when missing, so re-submitting "Smash Deluxe" and "smash deluxe" ends
// up on the same row. The returned bool reports whether a new row was
// inserted.
func (s *Store) EnsureBurger(ctx context.Context, placeID, name, createdBy string) (models.Burger, bool, error) {
	return s.ensureBurgerTx(ctx, s.db, placeID, name, createdBy)
}

// ListBurgersByPlace returns a place's burgers in creation order.
func (s *Store) ListBurgersByPlace(ctx context.Context, placeID string) ([]models.Burger, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, place_id, name, created_by, created_at
		FROM burgers
		WHERE place_id = $1
		ORDER BY created_at ASC
	`, placeID)
	if err != nil {
		return nil, fmt.Errorf("select burgers: %w", err)
	}
	defer rows.Close()

	var burgers []models.Burger
	for rows.Next() {
		var b models.Burger
		if err := rows.Scan(&b.ID, &b.PlaceID, &b.Name, &b.CreatedBy, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan burger: %w", err)
		}
		burgers = append(burgers, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate burgers: %w", err)
	}
	return burgers, nil
}

func (s *Store) ensureBurgerTx(ctx context.Context, q querier, placeID, name, createdBy string) (models.Burger, bool, error) {
	name = strings.TrimSpace(name)

	var b models.Burger
	err := q.QueryRowContext(ctx, `
		SELECT id, place_id, name, created_by, created_at
		FROM burgers
		WHERE place_id = $1 AND LOWER(name) = LOWER($2)
	`, placeID, name).Scan(&b.ID, &b.PlaceID, &b.Name, &b.CreatedBy, &b.CreatedAt)
	if err == nil {
		return b, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Burger{}, false, fmt.Errorf("select burger: %w", err)
	}

	b = models.Burger{
		ID:        uuid.NewString(),
		PlaceID:   placeID,
		Name:      name,
		CreatedBy: createdBy,
	}
	err = q.QueryRowContext(ctx, `
		INSERT INTO burgers (id, place_id, name, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, b.ID, b.PlaceID, b.Name, b.CreatedBy).Scan(&b.CreatedAt)
	if err != nil {
		return models.Burger{}, false, fmt.Errorf("insert burger: %w", err)
	}
	return b, true, nil
}
