package httpapi

import (
	"errors"
	"net/http"

	"burgerlog/internal/app/adventure"
	"burgerlog/internal/app/places"
	"burgerlog/internal/app/ratings"
	"burgerlog/internal/app/reviews"
	"burgerlog/internal/app/visits"
	"burgerlog/internal/store"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrPlaceNotFound),
		errors.Is(err, store.ErrVisitNotFound),
		errors.Is(err, store.ErrRatingNotFound),
		errors.Is(err, store.ErrNoAdventure):
		return http.StatusNotFound
	case errors.Is(err, reviews.ErrUnknownUser),
		errors.Is(err, ratings.ErrUnknownUser),
		errors.Is(err, adventure.ErrUnknownUser),
		errors.Is(err, places.ErrUnknownUser),
		errors.Is(err, reviews.ErrInvalidReview),
		errors.Is(err, ratings.ErrInvalidRating),
		errors.Is(err, adventure.ErrInvalidAdventure),
		errors.Is(err, places.ErrInvalidPlace),
		errors.Is(err, visits.ErrInvalidVisit):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
