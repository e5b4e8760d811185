package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"burgerlog/internal/app/reviews"
)

type reviewRequest struct {
	UserName        string   `json:"user_name"`
	PlaceName       string   `json:"place_name"`
	Address         *string  `json:"address"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	ExternalPlaceID *string  `json:"external_place_id"`
	ImageURL        *string  `json:"image_url"`
	VisitDate       *string  `json:"visit_date"` // RFC 3339, defaults to now
	BurgerName      string   `json:"burger_name"`
	Meat            int      `json:"meat_rating"`
	Cheese          int      `json:"cheese_rating"`
	Juiciness       int      `json:"juiciness_rating"`
	Bread           int      `json:"bread_rating"`
	Sauce           int      `json:"sauce_rating"`
	Fries           *int     `json:"fries_rating"`
	Comment         *string  `json:"comment"`
	Price           *float64 `json:"price"`
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	var visitDate time.Time
	if req.VisitDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.VisitDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid visit_date, want RFC 3339"})
			return
		}
		visitDate = parsed
	}

	review, err := s.reviews.Submit(r.Context(), reviews.Submission{
		UserName:   req.UserName,
		PlaceName:  req.PlaceName,
		Address:    req.Address,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		ExternalID: req.ExternalPlaceID,
		ImageURL:   req.ImageURL,
		VisitDate:  visitDate,
		BurgerName: req.BurgerName,
		Meat:       req.Meat,
		Cheese:     req.Cheese,
		Juiciness:  req.Juiciness,
		Bread:      req.Bread,
		Sauce:      req.Sauce,
		Fries:      req.Fries,
		Comment:    req.Comment,
		Price:      req.Price,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}
