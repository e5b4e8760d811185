package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"burgerlog/internal/app/overview"
	"burgerlog/internal/app/places"
	"burgerlog/internal/app/reviews"
	"burgerlog/internal/models"
	"burgerlog/internal/photos"
	"burgerlog/internal/placesapi"
	"burgerlog/internal/stats"
	"burgerlog/internal/store"
)

type stubReviewService struct {
	lastSubmission reviews.Submission
	review         store.Review
	err            error
}

func (s *stubReviewService) Submit(_ context.Context, sub reviews.Submission) (store.Review, error) {
	s.lastSubmission = sub
	if s.err != nil {
		return store.Review{}, s.err
	}
	return s.review, nil
}

type stubPlaceService struct {
	lastQuery stats.Query
	views     []places.PlaceView
	place     models.Place
	ratings   []models.Rating
	burgers   []models.Burger
	err       error
}

func (s *stubPlaceService) List(_ context.Context, q stats.Query) ([]places.PlaceView, error) {
	s.lastQuery = q
	if s.err != nil {
		return nil, s.err
	}
	return s.views, nil
}

func (s *stubPlaceService) Get(context.Context, string) (models.Place, error) {
	return s.place, s.err
}

func (s *stubPlaceService) Update(_ context.Context, _ string, place models.Place) (models.Place, error) {
	if s.err != nil {
		return models.Place{}, s.err
	}
	return place, nil
}

func (s *stubPlaceService) Delete(context.Context, string) error {
	return s.err
}

func (s *stubPlaceService) Ratings(context.Context, string) ([]models.Rating, error) {
	return s.ratings, s.err
}

func (s *stubPlaceService) Burgers(context.Context, string) ([]models.Burger, error) {
	return s.burgers, s.err
}

type stubVisitService struct {
	visits []models.Visit
	err    error
}

func (s *stubVisitService) Create(_ context.Context, visit models.Visit) (models.Visit, error) {
	return visit, s.err
}

func (s *stubVisitService) List(context.Context) ([]models.Visit, error) {
	return s.visits, s.err
}

func (s *stubVisitService) ListByPlace(context.Context, string) ([]models.Visit, error) {
	return s.visits, s.err
}

func (s *stubVisitService) Update(_ context.Context, _ string, visit models.Visit) (models.Visit, error) {
	return visit, s.err
}

func (s *stubVisitService) Delete(context.Context, string) error {
	return s.err
}

type stubRatingService struct {
	lastID   string
	lastUser string
	err      error
}

func (s *stubRatingService) Update(_ context.Context, id, userName string, rating models.Rating) (models.Rating, error) {
	s.lastID, s.lastUser = id, userName
	if s.err != nil {
		return models.Rating{}, s.err
	}
	rating.ID = id
	rating.UserName = userName
	return rating, nil
}

func (s *stubRatingService) Delete(_ context.Context, id, userName string) error {
	s.lastID, s.lastUser = id, userName
	return s.err
}

type stubAdventureService struct {
	adventure models.NextAdventure
	err       error
}

func (s *stubAdventureService) Current(context.Context) (models.NextAdventure, error) {
	return s.adventure, s.err
}

func (s *stubAdventureService) Plan(_ context.Context, adventure models.NextAdventure) (models.NextAdventure, error) {
	if s.err != nil {
		return models.NextAdventure{}, s.err
	}
	return adventure, nil
}

type stubOverviewService struct {
	view overview.Overview
	err  error
}

func (s *stubOverviewService) Build(context.Context) (overview.Overview, error) {
	return s.view, s.err
}

type stubSearchService struct {
	candidates []placesapi.Candidate
	err        error
}

func (s *stubSearchService) SearchText(context.Context, string) ([]placesapi.Candidate, error) {
	return s.candidates, s.err
}

func (s *stubSearchService) SearchNearby(context.Context, float64, float64, int) ([]placesapi.Candidate, error) {
	return s.candidates, s.err
}

type stubPhotoService struct {
	url string
	err error
}

func (s *stubPhotoService) Save(string, io.Reader) (string, error) {
	return s.url, s.err
}

func (s *stubPhotoService) Dir() string {
	return "."
}

type testServer struct {
	reviews   *stubReviewService
	places    *stubPlaceService
	visits    *stubVisitService
	ratings   *stubRatingService
	adventure *stubAdventureService
	overview  *stubOverviewService
	search    *stubSearchService
	photos    *stubPhotoService
}

func newTestServer() (*Server, *testServer) {
	stubs := &testServer{
		reviews:   &stubReviewService{},
		places:    &stubPlaceService{},
		visits:    &stubVisitService{},
		ratings:   &stubRatingService{},
		adventure: &stubAdventureService{},
		overview:  &stubOverviewService{},
		search:    &stubSearchService{},
		photos:    &stubPhotoService{url: "/media/photo.jpg"},
	}
	srv := New(stubs.reviews, stubs.places, stubs.visits, stubs.ratings,
		stubs.adventure, stubs.overview, stubs.search, stubs.photos)
	return srv, stubs
}

func TestSubmitReview(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.reviews.review = store.Review{
		Place:  models.Place{ID: "p1", Name: "Goiko"},
		Rating: models.Rating{ID: "r1", UserName: models.UserLolo},
	}

	body := `{
		"user_name": "Lolo",
		"place_name": "Goiko",
		"burger_name": "Kevin Bacon",
		"meat_rating": 5, "cheese_rating": 4, "juiciness_rating": 3,
		"bread_rating": 4, "sauce_rating": 5,
		"fries_rating": 2,
		"visit_date": "2025-03-15T20:30:00Z"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	sub := stubs.reviews.lastSubmission
	if sub.UserName != models.UserLolo || sub.BurgerName != "Kevin Bacon" {
		t.Fatalf("unexpected submission: %+v", sub)
	}
	if sub.Fries == nil || *sub.Fries != 2 {
		t.Fatalf("expected fries 2, got %+v", sub.Fries)
	}
	if sub.VisitDate.IsZero() {
		t.Fatal("expected visit date to be parsed")
	}
}

func TestSubmitReviewRejectsUnknownUser(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.reviews.err = reviews.ErrUnknownUser

	body := `{"user_name": "mallory", "place_name": "Goiko", "burger_name": "X",
		"meat_rating": 3, "cheese_rating": 3, "juiciness_rating": 3, "bread_rating": 3, "sauce_rating": 3}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubmitReviewInvalidJSON(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListPlacesPassesQuery(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.places.views = []places.PlaceView{
		{Place: models.Place{ID: "p1", Name: "Goiko"}, Score: 4.2, RatingCount: 3},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/places?q=goi&user=David&sort=rating", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	q := stubs.places.lastQuery
	if q.Search != "goi" || q.User != models.UserDavid || q.Sort != stats.SortRating {
		t.Fatalf("unexpected query: %+v", q)
	}

	var resp struct {
		Places []places.PlaceView `json:"places"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Places) != 1 || resp.Places[0].Score != 4.2 {
		t.Fatalf("unexpected payload: %+v", resp.Places)
	}
}

func TestListPlacesRejectsBadSort(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/places?sort=sideways", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetPlaceNotFound(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.places.err = store.ErrPlaceNotFound

	req := httptest.NewRequest(http.MethodGet, "/api/v1/places/missing", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteRatingCarriesUser(t *testing.T) {
	srv, stubs := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/ratings/r1?user=Lolo", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if stubs.ratings.lastID != "r1" || stubs.ratings.lastUser != models.UserLolo {
		t.Fatalf("unexpected delete args: id=%q user=%q", stubs.ratings.lastID, stubs.ratings.lastUser)
	}
}

func TestGetAdventureNotPlanned(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.adventure.err = store.ErrNoAdventure

	req := httptest.NewRequest(http.MethodGet, "/api/v1/next-adventure", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPlanAdventure(t *testing.T) {
	srv, _ := newTestServer()

	body := `{"user_name": "David", "place_name": "Frankie Burgers"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/next-adventure", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var adventure models.NextAdventure
	if err := json.NewDecoder(rec.Body).Decode(&adventure); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if adventure.PlaceName != "Frankie Burgers" || adventure.UpdatedBy != models.UserDavid {
		t.Fatalf("unexpected adventure: %+v", adventure)
	}
}

func TestOverview(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.overview.view = overview.Overview{
		TotalPlaces:  2,
		TotalRatings: 5,
		StreakDays:   3,
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var view overview.Overview
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.TotalPlaces != 2 || view.StreakDays != 3 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestSearchPlacesRequiresQuery(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/places", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSearchUnconfigured(t *testing.T) {
	stubs := &testServer{
		reviews:   &stubReviewService{},
		places:    &stubPlaceService{},
		visits:    &stubVisitService{},
		ratings:   &stubRatingService{},
		adventure: &stubAdventureService{},
		overview:  &stubOverviewService{},
		photos:    &stubPhotoService{},
	}
	srv := New(stubs.reviews, stubs.places, stubs.visits, stubs.ratings,
		stubs.adventure, stubs.overview, nil, stubs.photos)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/places?q=goiko", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestSearchNearbyValidatesCoordinates(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/nearby?lat=forty", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUploadPhoto(t *testing.T) {
	srv, _ := newTestServer()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("photo", "burger.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("fake image bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/photos", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.URL != "/media/photo.jpg" {
		t.Fatalf("unexpected url %q", resp.URL)
	}
}

func TestUploadPhotoTooLarge(t *testing.T) {
	srv, stubs := newTestServer()
	stubs.photos.err = photos.ErrTooLarge

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("photo", "burger.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("pretend this is huge"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/photos", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}

func TestUploadPhotoMissingField(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/photos", strings.NewReader("not multipart"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
