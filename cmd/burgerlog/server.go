package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"burgerlog/internal/app/adventure"
	"burgerlog/internal/app/overview"
	"burgerlog/internal/app/places"
	"burgerlog/internal/app/ratings"
	"burgerlog/internal/app/reviews"
	"burgerlog/internal/app/visits"
	"burgerlog/internal/httpapi"
	"burgerlog/internal/middleware"
	"burgerlog/internal/photos"
	"burgerlog/internal/placesapi"
	"burgerlog/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) (http.Handler, error) {
	reviewSvc := reviews.New(dataStore)
	placeSvc := places.New(dataStore)
	visitSvc := visits.New(dataStore)
	ratingSvc := ratings.New(dataStore)
	adventureSvc := adventure.New(dataStore)
	overviewSvc := overview.New(dataStore)

	photoStore, err := photos.NewStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		return nil, err
	}

	var searchSvc httpapi.SearchService
	if cfg.GoogleMapsKey != "" {
		searchSvc = placesapi.NewClient(cfg.GoogleMapsKey)
		log.Info().Msg("Google Places client initialized")
	} else {
		log.Info().Msg("GOOGLE_MAPS_API_KEY not provided, place search disabled")
	}

	api := httpapi.New(reviewSvc, placeSvc, visitSvc, ratingSvc,
		adventureSvc, overviewSvc, searchSvc, photoStore)

	handler := api.Routes()
	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)
	handler = middleware.CORS(cfg.AllowedOrigins)(handler)
	return handler, nil
}
