package httpapi

import (
	"net/http"
	"strconv"

	"burgerlog/internal/placesapi"
)

func (s *Server) handleSearchPlaces(w http.ResponseWriter, r *http.Request) {
	if s.search == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "place search is not configured"})
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing q parameter"})
		return
	}

	candidates, err := s.search.SearchText(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Results []placesapi.Candidate `json:"results"`
	}{Results: candidates})
}

func (s *Server) handleSearchNearby(w http.ResponseWriter, r *http.Request) {
	if s.search == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "place search is not configured"})
		return
	}

	query := r.URL.Query()
	lat, latErr := strconv.ParseFloat(query.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(query.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing or invalid lat/lng parameters"})
		return
	}

	radius := 0
	if radiusStr := query.Get("radius"); radiusStr != "" {
		parsed, err := strconv.Atoi(radiusStr)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid radius parameter"})
			return
		}
		radius = parsed
	}

	candidates, err := s.search.SearchNearby(r.Context(), lat, lng, radius)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Places []placesapi.Candidate `json:"places"`
	}{Places: candidates})
}
