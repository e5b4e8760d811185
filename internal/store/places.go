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

const placeColumns = `id, name, address, latitude, longitude, external_place_id, image_url, created_by, created_at`

// EnsurePlace finds an existing place by external place id, falling back to a
// case-insensitive name match, and creates one when neither matches. The
// returned bool reports whether a new row was inserted.
func (s *Store) EnsurePlace(ctx context.Context, place models.Place) (models.Place, bool, error) {
	found, err := s.findPlaceTx(ctx, s.db, place)
	if err == nil {
		return found, false, nil
	}
	if !errors.Is(err, ErrPlaceNotFound) {
		return models.Place{}, false, err
	}
	created, err := s.insertPlaceTx(ctx, s.db, place)
	if err != nil {
		return models.Place{}, false, err
	}
	return created, true, nil
}

// FindPlace locates an existing place the way review submission would: by
// external place id first, then by case-insensitive name. Returns
// ErrPlaceNotFound when neither matches.
func (s *Store) FindPlace(ctx context.Context, place models.Place) (models.Place, error) {
	return s.findPlaceTx(ctx, s.db, place)
}

// ListPlaces returns every place, newest first.
func (s *Store) ListPlaces(ctx context.Context) ([]models.Place, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+placeColumns+`
		FROM burger_places
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("select places: %w", err)
	}
	defer rows.Close()

	var places []models.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate places: %w", err)
	}
	return places, nil
}

// GetPlace retrieves a single place by ID.
func (s *Store) GetPlace(ctx context.Context, id string) (models.Place, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+placeColumns+`
		FROM burger_places
		WHERE id = $1
	`, id)

	p, err := scanPlace(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Place{}, ErrPlaceNotFound
	}
	if err != nil {
		return models.Place{}, fmt.Errorf("select place: %w", err)
	}
	return p, nil
}

// UpdatePlace edits a place's name, location and image. Either user may edit
// any place.
func (s *Store) UpdatePlace(ctx context.Context, id string, place models.Place) (models.Place, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE burger_places
		SET name = $1, address = $2, latitude = $3, longitude = $4,
		    external_place_id = $5, image_url = $6
		WHERE id = $7
		RETURNING `+placeColumns+`
	`, strings.TrimSpace(place.Name), place.Address, place.Latitude, place.Longitude,
		place.ExternalPlaceID, place.ImageURL, id)

	p, err := scanPlace(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Place{}, ErrPlaceNotFound
	}
	if err != nil {
		return models.Place{}, fmt.Errorf("update place: %w", err)
	}
	return p, nil
}

// DeletePlace removes a place along with its visits, burgers and ratings
// (cascaded by the schema).
func (s *Store) DeletePlace(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM burger_places WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	if rows == 0 {
		return ErrPlaceNotFound
	}
	return nil
}

type querier interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}

func (s *Store) findPlaceTx(ctx context.Context, q querier, place models.Place) (models.Place, error) {
	if place.ExternalPlaceID != nil && *place.ExternalPlaceID != "" {
		row := q.QueryRowContext(ctx, `
			SELECT `+placeColumns+`
			FROM burger_places
			WHERE external_place_id = $1
		`, *place.ExternalPlaceID)
		p, err := scanPlace(row)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return models.Place{}, fmt.Errorf("select place by external id: %w", err)
		}
	}

	row := q.QueryRowContext(ctx, `
		SELECT `+placeColumns+`
		FROM burger_places
		WHERE LOWER(name) = LOWER($1)
	`, strings.TrimSpace(place.Name))
	p, err := scanPlace(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Place{}, ErrPlaceNotFound
	}
	if err != nil {
		return models.Place{}, fmt.Errorf("select place by name: %w", err)
	}
	return p, nil
}

func (s *Store) insertPlaceTx(ctx context.Context, q querier, place models.Place) (models.Place, error) {
	place.ID = uuid.NewString()
	place.Name = strings.TrimSpace(place.Name)

	err := q.QueryRowContext(ctx, `
		INSERT INTO burger_places (id, name, address, latitude, longitude, external_place_id, image_url, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, place.ID, place.Name, place.Address, place.Latitude, place.Longitude,
		place.ExternalPlaceID, place.ImageURL, place.CreatedBy).Scan(&place.CreatedAt)
	if err != nil {
		return models.Place{}, fmt.Errorf("insert place: %w", err)
	}
	return place, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlace(row rowScanner) (models.Place, error) {
	var p models.Place
	err := row.Scan(&p.ID, &p.Name, &p.Address, &p.Latitude, &p.Longitude,
		&p.ExternalPlaceID, &p.ImageURL, &p.CreatedBy, &p.CreatedAt)
	return p, err
}
