package store

import (
	"database/sql"
	"errors"
)

var (
	// ErrPlaceNotFound signals the referenced place does not exist.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrVisitNotFound signals the referenced visit does not exist.
	ErrVisitNotFound = errors.New("visit not found")
	// ErrRatingNotFound signals the rating does not exist or is not owned
	// by the acting user.
	ErrRatingNotFound = errors.New("rating not found")
	// ErrNoAdventure signals there is no planned next adventure.
	ErrNoAdventure = errors.New("no next adventure planned")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}
