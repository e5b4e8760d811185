package httpapi

import (
	"encoding/json"
	"net/http"

	"burgerlog/internal/app/places"
	"burgerlog/internal/models"
	"burgerlog/internal/stats"
)

func (s *Server) handleListPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := stats.Query{
		Search: query.Get("q"),
		User:   query.Get("user"),
		Sort:   stats.SortMode(query.Get("sort")),
	}
	switch q.Sort {
	case "", stats.SortRecent, stats.SortRating, stats.SortName:
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid sort parameter"})
		return
	}

	views, err := s.places.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Places []places.PlaceView `json:"places"`
	}{Places: views})
}

func (s *Server) handleGetPlace(w http.ResponseWriter, r *http.Request) {
	place, err := s.places.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, place)
}

func (s *Server) handleUpdatePlace(w http.ResponseWriter, r *http.Request) {
	var place models.Place
	if err := json.NewDecoder(r.Body).Decode(&place); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	updated, err := s.places.Update(r.Context(), r.PathValue("id"), place)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeletePlace(w http.ResponseWriter, r *http.Request) {
	if err := s.places.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePlaceRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := s.places.Ratings(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Ratings []models.Rating `json:"ratings"`
	}{Ratings: ratings})
}

func (s *Server) handlePlaceBurgers(w http.ResponseWriter, r *http.Request) {
	burgers, err := s.places.Burgers(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Burgers []models.Burger `json:"burgers"`
	}{Burgers: burgers})
}

func (s *Server) handlePlaceVisits(w http.ResponseWriter, r *http.Request) {
	if _, err := s.places.Get(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	visits, err := s.visits.ListByPlace(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Visits []models.Visit `json:"visits"`
	}{Visits: visits})
}
