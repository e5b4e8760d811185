package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"burgerlog/internal/models"
	"burgerlog/internal/store"
)

// bootstrapDemoData seeds a couple of reviews and a planned adventure so a
// fresh instance has something to show. Runs only against an empty catalog.
func bootstrapDemoData(ctx context.Context, db *sql.DB, dataStore *store.Store) error {
	placesTableExists, err := tableExists(ctx, db, "burger_places")
	if err != nil {
		return fmt.Errorf("check burger_places table: %w", err)
	}
	if !placesTableExists {
		return nil
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM burger_places`).Scan(&count); err != nil {
		return fmt.Errorf("count places: %w", err)
	}
	if count > 0 {
		return nil
	}

	strPtr := func(s string) *string { return &s }
	intPtr := func(v int) *int { return &v }
	floatPtr := func(v float64) *float64 { return &v }

	seeds := []store.ReviewSubmission{
		{
			Place: models.Place{
				Name:      "Goiko",
				Address:   strPtr("Calle de Fuencarral 122, Madrid"),
				Latitude:  floatPtr(40.4312),
				Longitude: floatPtr(-3.7021),
				ImageURL:  strPtr("/media/demo-goiko.jpg"),
				CreatedBy: models.UserLolo,
			},
			VisitDate:  time.Now().AddDate(0, 0, -7),
			VisitImage: strPtr("/media/demo-goiko.jpg"),
			BurgerName: "Kevin Bacon",
			Rating: models.Rating{
				UserName: models.UserLolo,
				Meat:     5, Cheese: 4, Juiciness: 5, Bread: 4, Sauce: 4,
				Fries:   intPtr(4),
				Comment: strPtr("La mejor carne hasta ahora"),
				Price:   floatPtr(13.5),
			},
		},
		{
			Place: models.Place{
				Name:      "Goiko",
				CreatedBy: models.UserDavid,
			},
			VisitDate:  time.Now().AddDate(0, 0, -7),
			BurgerName: "Kevin Bacon",
			Rating: models.Rating{
				UserName: models.UserDavid,
				Meat:     4, Cheese: 5, Juiciness: 4, Bread: 4, Sauce: 5,
				Comment: strPtr("El queso fundido es otra cosa"),
				Price:   floatPtr(13.5),
			},
		},
		{
			Place: models.Place{
				Name:      "Junk Burger",
				Address:   strPtr("Calle de Gonzalo de Córdoba 4, Madrid"),
				ImageURL:  strPtr("/media/demo-junk.jpg"),
				CreatedBy: models.UserDavid,
			},
			VisitDate:  time.Now().AddDate(0, 0, -2),
			VisitImage: strPtr("/media/demo-junk.jpg"),
			BurgerName: "Smash Clásica",
			Rating: models.Rating{
				UserName: models.UserDavid,
				Meat:     4, Cheese: 3, Juiciness: 4, Bread: 5, Sauce: 3,
				Fries: intPtr(5),
				Price: floatPtr(11.0),
			},
		},
	}

	for _, seed := range seeds {
		if _, err := dataStore.SubmitReview(ctx, seed); err != nil {
			return fmt.Errorf("seed review for %s: %w", seed.Place.Name, err)
		}
	}

	if _, err := dataStore.ReplaceAdventure(ctx, models.NextAdventure{
		PlaceName: "Frankie Burgers",
		Address:   strPtr("Calle de Echegaray 28, Madrid"),
		UpdatedBy: models.UserLolo,
	}); err != nil {
		return fmt.Errorf("seed next adventure: %w", err)
	}

	return nil
}

func tableExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)
	`, name).Scan(&exists)
	return exists, err
}
