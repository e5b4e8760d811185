package httpapi

import (
	"encoding/json"
	"net/http"

	"burgerlog/internal/models"
)

type ratingRequest struct {
	UserName  string   `json:"user_name"`
	Meat      int      `json:"meat_rating"`
	Cheese    int      `json:"cheese_rating"`
	Juiciness int      `json:"juiciness_rating"`
	Bread     int      `json:"bread_rating"`
	Sauce     int      `json:"sauce_rating"`
	Fries     *int     `json:"fries_rating"`
	Comment   *string  `json:"comment"`
	Price     *float64 `json:"price"`
}

func (s *Server) handleUpdateRating(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	rating, err := s.ratings.Update(r.Context(), r.PathValue("id"), req.UserName, models.Rating{
		Meat:      req.Meat,
		Cheese:    req.Cheese,
		Juiciness: req.Juiciness,
		Bread:     req.Bread,
		Sauce:     req.Sauce,
		Fries:     req.Fries,
		Comment:   req.Comment,
		Price:     req.Price,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rating)
}

func (s *Server) handleDeleteRating(w http.ResponseWriter, r *http.Request) {
	// The acting user rides in the query string since DELETE bodies are
	// unreliable across proxies.
	userName := r.URL.Query().Get("user")
	if err := s.ratings.Delete(r.Context(), r.PathValue("id"), userName); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
