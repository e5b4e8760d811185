package httpapi

import (
	"errors"
	"net/http"

	"burgerlog/internal/photos"
)

// maxUploadBytes bounds the whole multipart request body.
const maxUploadBytes = 12 << 20

func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing photo file field"})
		return
	}
	defer file.Close()

	url, err := s.photos.Save(header.Header.Get("Content-Type"), file)
	if err != nil {
		switch {
		case errors.Is(err, photos.ErrUnsupportedType):
			writeJSON(w, http.StatusUnsupportedMediaType, errorResponse{Error: err.Error()})
		case errors.Is(err, photos.ErrTooLarge):
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()})
		default:
			writeError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		URL string `json:"url"`
	}{URL: url})
}
