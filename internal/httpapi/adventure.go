package httpapi

import (
	"encoding/json"
	"net/http"

	"burgerlog/internal/models"
)

type adventureRequest struct {
	UserName        string   `json:"user_name"`
	PlaceName       string   `json:"place_name"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Address         *string  `json:"address"`
	ExternalPlaceID *string  `json:"external_place_id"`
}

func (s *Server) handleGetAdventure(w http.ResponseWriter, r *http.Request) {
	adventure, err := s.adventure.Current(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adventure)
}

func (s *Server) handlePlanAdventure(w http.ResponseWriter, r *http.Request) {
	var req adventureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	adventure, err := s.adventure.Plan(r.Context(), models.NextAdventure{
		PlaceName:       req.PlaceName,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Address:         req.Address,
		ExternalPlaceID: req.ExternalPlaceID,
		UpdatedBy:       req.UserName,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adventure)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	view, err := s.overview.Build(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
