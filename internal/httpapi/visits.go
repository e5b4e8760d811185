package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"burgerlog/internal/models"
)

type visitRequest struct {
	PlaceID   string  `json:"place_id"`
	UserName  string  `json:"user_name"`
	VisitDate *string `json:"visit_date"` // RFC 3339, defaults to now
	ImageURL  *string `json:"image_url"`
}

func (s *Server) handleCreateVisit(w http.ResponseWriter, r *http.Request) {
	var req visitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	visitDate := time.Now()
	if req.VisitDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.VisitDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid visit_date, want RFC 3339"})
			return
		}
		visitDate = parsed
	}

	visit, err := s.visits.Create(r.Context(), models.Visit{
		PlaceID:   req.PlaceID,
		VisitDate: visitDate,
		ImageURL:  req.ImageURL,
		CreatedBy: req.UserName,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, visit)
}

func (s *Server) handleListVisits(w http.ResponseWriter, r *http.Request) {
	var (
		visits []models.Visit
		err    error
	)
	if placeID := r.URL.Query().Get("place"); placeID != "" {
		visits, err = s.visits.ListByPlace(r.Context(), placeID)
	} else {
		visits, err = s.visits.List(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Visits []models.Visit `json:"visits"`
	}{Visits: visits})
}

func (s *Server) handleUpdateVisit(w http.ResponseWriter, r *http.Request) {
	var req visitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if req.VisitDate == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "visit_date is required"})
		return
	}
	visitDate, err := time.Parse(time.RFC3339, *req.VisitDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid visit_date, want RFC 3339"})
		return
	}

	visit, err := s.visits.Update(r.Context(), r.PathValue("id"), models.Visit{
		VisitDate: visitDate,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, visit)
}

func (s *Server) handleDeleteVisit(w http.ResponseWriter, r *http.Request) {
	if err := s.visits.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
