package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"burgerlog/internal/models"
)

// ratingColumns joins through visits so every rating carries its place id.
const ratingColumns = `r.id, r.visit_id, r.burger_id, v.place_id, r.user_name,
	       r.meat_rating, r.cheese_rating, r.juiciness_rating, r.bread_rating, r.sauce_rating,
	       r.fries_rating, r.comment, r.price, r.created_at`

// UpsertRating stores a user's current opinion of a burger. A second rating
// by the same user on the same burger overwrites the first in place; no
// history is retained.
func (s *Store) UpsertRating(ctx context.Context, rating models.Rating) (models.Rating, error) {
	return s.upsertRatingTx(ctx, s.db, rating)
}

// UpdateRating edits an existing rating. Only its owning user may edit it.
func (s *Store) UpdateRating(ctx context.Context, id, userName string, rating models.Rating) (models.Rating, error) {
	var updated models.Rating
	err := s.db.QueryRowContext(ctx, `
		UPDATE visit_ratings
		SET meat_rating = $1, cheese_rating = $2, juiciness_rating = $3,
		    bread_rating = $4, sauce_rating = $5, fries_rating = $6,
		    comment = $7, price = $8
		WHERE id = $9 AND user_name = $10
		RETURNING id, visit_id, burger_id, user_name, meat_rating, cheese_rating,
		          juiciness_rating, bread_rating, sauce_rating, fries_rating,
		          comment, price, created_at
	`, rating.Meat, rating.Cheese, rating.Juiciness, rating.Bread, rating.Sauce,
		rating.Fries, rating.Comment, rating.Price, id, userName).Scan(
		&updated.ID, &updated.VisitID, &updated.BurgerID, &updated.UserName,
		&updated.Meat, &updated.Cheese, &updated.Juiciness, &updated.Bread, &updated.Sauce,
		&updated.Fries, &updated.Comment, &updated.Price, &updated.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rating{}, ErrRatingNotFound
	}
	if err != nil {
		return models.Rating{}, fmt.Errorf("update rating: %w", err)
	}
	return updated, nil
}

// DeleteRating removes a rating. Only its owning user may delete it; a
// mismatch reports ErrRatingNotFound rather than leaking ownership.
func (s *Store) DeleteRating(ctx context.Context, id, userName string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM visit_ratings
		WHERE id = $1 AND user_name = $2
	`, id, userName)
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	if rows == 0 {
		return ErrRatingNotFound
	}
	return nil
}

// ListRatings returns every rating joined with its place reference.
func (s *Store) ListRatings(ctx context.Context) ([]models.Rating, error) {
	return s.listRatings(ctx, `
		SELECT `+ratingColumns+`
		FROM visit_ratings r
		JOIN visits v ON r.visit_id = v.id
		ORDER BY r.created_at DESC
	`)
}

// ListRatingsByPlace returns every rating attached to a place through any of
// its visits.
func (s *Store) ListRatingsByPlace(ctx context.Context, placeID string) ([]models.Rating, error) {
	return s.listRatings(ctx, `
		SELECT `+ratingColumns+`
		FROM visit_ratings r
		JOIN visits v ON r.visit_id = v.id
		WHERE v.place_id = $1
		ORDER BY r.created_at DESC
	`, placeID)
}

func (s *Store) listRatings(ctx context.Context, query string, args ...any) ([]models.Rating, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select ratings: %w", err)
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		var r models.Rating
		if err := rows.Scan(&r.ID, &r.VisitID, &r.BurgerID, &r.PlaceID, &r.UserName,
			&r.Meat, &r.Cheese, &r.Juiciness, &r.Bread, &r.Sauce,
			&r.Fries, &r.Comment, &r.Price, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}
	return ratings, nil
}

func (s *Store) upsertRatingTx(ctx context.Context, q querier, rating models.Rating) (models.Rating, error) {
	rating.ID = uuid.NewString()
	err := q.QueryRowContext(ctx, `
		INSERT INTO visit_ratings (id, visit_id, burger_id, user_name, meat_rating, cheese_rating,
		                           juiciness_rating, bread_rating, sauce_rating, fries_rating, comment, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_name, burger_id) DO UPDATE
		SET visit_id = EXCLUDED.visit_id,
		    meat_rating = EXCLUDED.meat_rating,
		    cheese_rating = EXCLUDED.cheese_rating,
		    juiciness_rating = EXCLUDED.juiciness_rating,
		    bread_rating = EXCLUDED.bread_rating,
		    sauce_rating = EXCLUDED.sauce_rating,
		    fries_rating = EXCLUDED.fries_rating,
		    comment = EXCLUDED.comment,
		    price = EXCLUDED.price
		RETURNING id, created_at
	`, rating.ID, rating.VisitID, rating.BurgerID, rating.UserName,
		rating.Meat, rating.Cheese, rating.Juiciness, rating.Bread, rating.Sauce,
		rating.Fries, rating.Comment, rating.Price).Scan(&rating.ID, &rating.CreatedAt)
	if err != nil {
		return models.Rating{}, fmt.Errorf("upsert rating: %w", err)
	}
	return rating, nil
}
