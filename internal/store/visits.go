package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"burgerlog/internal/models"
)

const visitColumns = `id, place_id, visit_date, image_url, created_by, created_at`

// CreateVisit records a visit to an existing place and clears the planned
// next adventure when it targets the same place.
func (s *Store) CreateVisit(ctx context.Context, visit models.Visit) (models.Visit, error) {
	place, err := s.GetPlace(ctx, visit.PlaceID)
	if err != nil {
		return models.Visit{}, err
	}

	created, err := s.insertVisitTx(ctx, s.db, visit)
	if err != nil {
		return models.Visit{}, err
	}

	if err := s.clearAdventureForPlaceTx(ctx, s.db, place); err != nil {
		return models.Visit{}, err
	}
	return created, nil
}

// ListVisitsByPlace returns a place's visits, most recent visit date first.
func (s *Store) ListVisitsByPlace(ctx context.Context, placeID string) ([]models.Visit, error) {
	return s.listVisits(ctx, `
		SELECT `+visitColumns+`
		FROM visits
		WHERE place_id = $1
		ORDER BY visit_date DESC, created_at DESC
	`, placeID)
}

// ListVisits returns every visit, most recent visit date first.
func (s *Store) ListVisits(ctx context.Context) ([]models.Visit, error) {
	return s.listVisits(ctx, `
		SELECT `+visitColumns+`
		FROM visits
		ORDER BY visit_date DESC, created_at DESC
	`)
}

// UpdateVisit edits a visit's date and photo.
func (s *Store) UpdateVisit(ctx context.Context, id string, visit models.Visit) (models.Visit, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE visits
		SET visit_date = $1, image_url = $2
		WHERE id = $3
		RETURNING `+visitColumns+`
	`, visit.VisitDate, visit.ImageURL, id)

	v, err := scanVisit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Visit{}, ErrVisitNotFound
	}
	if err != nil {
		return models.Visit{}, fmt.Errorf("update visit: %w", err)
	}
	return v, nil
}

// DeleteVisit removes a visit and its ratings (cascaded by the schema).
func (s *Store) DeleteVisit(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}
	if rows == 0 {
		return ErrVisitNotFound
	}
	return nil
}

func (s *Store) listVisits(ctx context.Context, query string, args ...any) ([]models.Visit, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select visits: %w", err)
	}
	defer rows.Close()

	var visits []models.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate visits: %w", err)
	}
	return visits, nil
}

func (s *Store) insertVisitTx(ctx context.Context, q querier, visit models.Visit) (models.Visit, error) {
	visit.ID = uuid.NewString()
	err := q.QueryRowContext(ctx, `
		INSERT INTO visits (id, place_id, visit_date, image_url, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, visit.ID, visit.PlaceID, visit.VisitDate, visit.ImageURL, visit.CreatedBy).Scan(&visit.CreatedAt)
	if err != nil {
		return models.Visit{}, fmt.Errorf("insert visit: %w", err)
	}
	return visit, nil
}

func scanVisit(row rowScanner) (models.Visit, error) {
	var v models.Visit
	err := row.Scan(&v.ID, &v.PlaceID, &v.VisitDate, &v.ImageURL, &v.CreatedBy, &v.CreatedAt)
	return v, err
}
