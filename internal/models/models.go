package models

import "time"

// The app is hard-wired to exactly two users.
const (
	UserLolo  = "Lolo"
	UserDavid = "David"
)

// Users returns the closed set of user identities.
func Users() []string {
	return []string{UserLolo, UserDavid}
}

// ValidUser reports whether name is one of the two fixed identities.
func ValidUser(name string) bool {
	return name == UserLolo || name == UserDavid
}

// Place represents a burger restaurant being tracked.
type Place struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Address         *string   `json:"address,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	ExternalPlaceID *string   `json:"external_place_id,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// Visit is one occasion of attending a place.
type Visit struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"place_id"`
	VisitDate time.Time `json:"visit_date"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Burger is a specific menu item at a place, deduplicated per place
// under case-insensitive name comparison.
type Burger struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"place_id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Rating is one user's current opinion of one burger. Edits overwrite in
// place; there is at most one rating per (user, burger) pair.
//
// The five mandatory categories are integers in [0,5]. Fries is an optional
// bonus category: nil means "not supplied", which is distinct from 0.
type Rating struct {
	ID        string    `json:"id"`
	VisitID   string    `json:"visit_id"`
	BurgerID  string    `json:"burger_id"`
	PlaceID   string    `json:"place_id"`
	UserName  string    `json:"user_name"`
	Meat      int       `json:"meat_rating"`
	Cheese    int       `json:"cheese_rating"`
	Juiciness int       `json:"juiciness_rating"`
	Bread     int       `json:"bread_rating"`
	Sauce     int       `json:"sauce_rating"`
	Fries     *int      `json:"fries_rating,omitempty"`
	Comment   *string   `json:"comment,omitempty"`
	Price     *float64  `json:"price,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NextAdventure is the single currently-planned future place. Updating it
// replaces any prior row wholesale; recording a visit to the tracked place
// clears it.
type NextAdventure struct {
	ID              string    `json:"id"`
	PlaceName       string    `json:"place_name"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	Address         *string   `json:"address,omitempty"`
	ExternalPlaceID *string   `json:"external_place_id,omitempty"`
	UpdatedBy       string    `json:"updated_by"`
	UpdatedAt       time.Time `json:"updated_at"`
}
