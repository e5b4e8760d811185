// Package httpapi wires the HTTP surface: reviews, the place catalog, visits,
// ratings, the dashboard, the next-adventure plan, photo uploads and external
// place search.
package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"burgerlog/internal/app/overview"
	"burgerlog/internal/app/places"
	"burgerlog/internal/app/reviews"
	"burgerlog/internal/models"
	"burgerlog/internal/placesapi"
	"burgerlog/internal/stats"
	"burgerlog/internal/store"
)

// ReviewService coordinates one-shot review submissions.
type ReviewService interface {
	Submit(ctx context.Context, sub reviews.Submission) (store.Review, error)
}

// PlaceService serves the place catalog.
type PlaceService interface {
	List(ctx context.Context, q stats.Query) ([]places.PlaceView, error)
	Get(ctx context.Context, id string) (models.Place, error)
	Update(ctx context.Context, id string, place models.Place) (models.Place, error)
	Delete(ctx context.Context, id string) error
	Ratings(ctx context.Context, placeID string) ([]models.Rating, error)
	Burgers(ctx context.Context, placeID string) ([]models.Burger, error)
}

// VisitService manages recorded visits.
type VisitService interface {
	Create(ctx context.Context, visit models.Visit) (models.Visit, error)
	List(ctx context.Context) ([]models.Visit, error)
	ListByPlace(ctx context.Context, placeID string) ([]models.Visit, error)
	Update(ctx context.Context, id string, visit models.Visit) (models.Visit, error)
	Delete(ctx context.Context, id string) error
}

// RatingService manages individual ratings.
type RatingService interface {
	Update(ctx context.Context, id, userName string, rating models.Rating) (models.Rating, error)
	Delete(ctx context.Context, id, userName string) error
}

// AdventureService manages the planned next adventure.
type AdventureService interface {
	Current(ctx context.Context) (models.NextAdventure, error)
	Plan(ctx context.Context, adventure models.NextAdventure) (models.NextAdventure, error)
}

// OverviewService computes the dashboard.
type OverviewService interface {
	Build(ctx context.Context) (overview.Overview, error)
}

// SearchService looks up burger places in the external places API.
type SearchService interface {
	SearchText(ctx context.Context, query string) ([]placesapi.Candidate, error)
	SearchNearby(ctx context.Context, lat, lng float64, radius int) ([]placesapi.Candidate, error)
}

// PhotoService stores uploaded photos and returns their public URLs.
type PhotoService interface {
	Save(contentType string, r io.Reader) (string, error)
	Dir() string
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	reviews   ReviewService
	places    PlaceService
	visits    VisitService
	ratings   RatingService
	adventure AdventureService
	overview  OverviewService
	search    SearchService
	photos    PhotoService
}

// New configures a Server over the given services. The search service may be
// nil when no places API key is configured; its routes then return 503.
func New(
	reviews ReviewService,
	places PlaceService,
	visits VisitService,
	ratings RatingService,
	adventure AdventureService,
	overview OverviewService,
	search SearchService,
	photos PhotoService,
) *Server {
	return &Server{
		reviews:   reviews,
		places:    places,
		visits:    visits,
		ratings:   ratings,
		adventure: adventure,
		overview:  overview,
		search:    search,
		photos:    photos,
	}
}

// Routes exposes the HTTP handlers.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Review submission
	mux.HandleFunc("POST /api/v1/reviews", s.handleSubmitReview)

	// Place catalog
	mux.HandleFunc("GET /api/v1/places", s.handleListPlaces)
	mux.HandleFunc("GET /api/v1/places/{id}", s.handleGetPlace)
	mux.HandleFunc("PUT /api/v1/places/{id}", s.handleUpdatePlace)
	mux.HandleFunc("DELETE /api/v1/places/{id}", s.handleDeletePlace)
	mux.HandleFunc("GET /api/v1/places/{id}/ratings", s.handlePlaceRatings)
	mux.HandleFunc("GET /api/v1/places/{id}/burgers", s.handlePlaceBurgers)
	mux.HandleFunc("GET /api/v1/places/{id}/visits", s.handlePlaceVisits)

	// Visits
	mux.HandleFunc("POST /api/v1/visits", s.handleCreateVisit)
	mux.HandleFunc("GET /api/v1/visits", s.handleListVisits)
	mux.HandleFunc("PUT /api/v1/visits/{id}", s.handleUpdateVisit)
	mux.HandleFunc("DELETE /api/v1/visits/{id}", s.handleDeleteVisit)

	// Ratings
	mux.HandleFunc("PUT /api/v1/ratings/{id}", s.handleUpdateRating)
	mux.HandleFunc("DELETE /api/v1/ratings/{id}", s.handleDeleteRating)

	// Dashboard
	mux.HandleFunc("GET /api/v1/stats", s.handleOverview)

	// Next adventure
	mux.HandleFunc("GET /api/v1/next-adventure", s.handleGetAdventure)
	mux.HandleFunc("PUT /api/v1/next-adventure", s.handlePlanAdventure)

	// External place search
	mux.HandleFunc("GET /api/v1/search/places", s.handleSearchPlaces)
	mux.HandleFunc("GET /api/v1/search/nearby", s.handleSearchNearby)

	// Photo upload and serving
	mux.HandleFunc("POST /api/v1/photos", s.handleUploadPhoto)
	if s.photos != nil {
		mux.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(s.photos.Dir()))))
	}

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// writeError maps the service sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}
