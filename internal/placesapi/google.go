// Package placesapi wraps the Google Places web services used to find new
// burger joints before they get their first review.
package placesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const googleAPIBase = "https://maps.googleapis.com/maps/api/place"

const (
	// DefaultNearbyRadius is the nearby search radius in meters.
	DefaultNearbyRadius = 5000
	// maxNearbyResults caps how many nearby hits get detail lookups.
	maxNearbyResults = 20
)

// Client wraps the Google Places API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Google Places API client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    googleAPIBase,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Candidate represents one external place search result.
type Candidate struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Rating           float64  `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
	PriceLevel       int      `json:"price_level,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Website          string   `json:"website,omitempty"`
	PhotoReference   string   `json:"photo_reference,omitempty"`
	OpeningHours     []string `json:"opening_hours,omitempty"`
}

// SearchText looks up burger places by free-text query. The query is biased
// toward burger joints and Spanish place names, matching how the rest of the
// catalog is written.
func (c *Client) SearchText(ctx context.Context, query string) ([]Candidate, error) {
	if query == "" {
		return []Candidate{}, nil
	}

	params := url.Values{}
	params.Set("query", query+" hamburguesería")
	params.Set("language", "es")
	params.Set("key", c.apiKey)

	var result searchResponse
	if err := c.get(ctx, fmt.Sprintf("%s/textsearch/json?%s", c.baseURL, params.Encode()), &result); err != nil {
		return nil, err
	}
	if result.Status != "OK" && result.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places API error: %s", result.Status)
	}

	candidates := make([]Candidate, 0, len(result.Results))
	for _, r := range result.Results {
		candidates = append(candidates, r.candidate())
	}
	return candidates, nil
}

// SearchNearby finds burger restaurants around a coordinate and enriches each
// hit with a details lookup. A radius of 0 falls back to DefaultNearbyRadius;
// at most maxNearbyResults places come back. Hits whose details lookup fails
// are dropped rather than failing the whole search.
func (c *Client) SearchNearby(ctx context.Context, lat, lng float64, radius int) ([]Candidate, error) {
	if radius <= 0 {
		radius = DefaultNearbyRadius
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("type", "restaurant")
	params.Set("keyword", "hamburguesa|burger")
	params.Set("key", c.apiKey)

	var result searchResponse
	if err := c.get(ctx, fmt.Sprintf("%s/nearbysearch/json?%s", c.baseURL, params.Encode()), &result); err != nil {
		return nil, err
	}
	if result.Status != "OK" && result.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places API error: %s", result.Status)
	}

	hits := result.Results
	if len(hits) > maxNearbyResults {
		hits = hits[:maxNearbyResults]
	}

	candidates := make([]Candidate, 0, len(hits))
	for _, r := range hits {
		detail, err := c.Details(ctx, r.PlaceID)
		if err != nil {
			continue
		}
		candidates = append(candidates, *detail)
	}
	return candidates, nil
}

// Details fetches full details for one place by its Google place id.
func (c *Client) Details(ctx context.Context, placeID string) (*Candidate, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,formatted_address,formatted_phone_number,website,opening_hours,price_level,rating,user_ratings_total,geometry,photos")
	params.Set("key", c.apiKey)

	var result detailsResponse
	if err := c.get(ctx, fmt.Sprintf("%s/details/json?%s", c.baseURL, params.Encode()), &result); err != nil {
		return nil, err
	}
	if result.Status != "OK" {
		return nil, fmt.Errorf("places API error: %s", result.Status)
	}

	candidate := result.Result.candidate()
	candidate.PlaceID = placeID
	return &candidate, nil
}

func (c *Client) get(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("places API status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode places response: %w", err)
	}
	return nil
}

// API response types

type searchResponse struct {
	Status  string        `json:"status"`
	Results []placeResult `json:"results"`
}

type detailsResponse struct {
	Status string      `json:"status"`
	Result placeResult `json:"result"`
}

type placeResult struct {
	PlaceID          string    `json:"place_id"`
	Name             string    `json:"name"`
	FormattedAddress string    `json:"formatted_address"`
	Vicinity         string    `json:"vicinity"`
	Phone            string    `json:"formatted_phone_number"`
	Website          string    `json:"website"`
	Rating           float64   `json:"rating"`
	UserRatingsTotal int       `json:"user_ratings_total"`
	PriceLevel       int       `json:"price_level"`
	Geometry         geometry  `json:"geometry"`
	Photos           []photo   `json:"photos"`
	OpeningHours     *openHours `json:"opening_hours"`
}

type geometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
}

type openHours struct {
	WeekdayText []string `json:"weekday_text"`
}

func (r placeResult) candidate() Candidate {
	c := Candidate{
		PlaceID:          r.PlaceID,
		Name:             r.Name,
		Address:          r.FormattedAddress,
		Latitude:         r.Geometry.Location.Lat,
		Longitude:        r.Geometry.Location.Lng,
		Rating:           r.Rating,
		UserRatingsTotal: r.UserRatingsTotal,
		PriceLevel:       r.PriceLevel,
		Phone:            r.Phone,
		Website:          r.Website,
	}
	if c.Address == "" {
		c.Address = r.Vicinity
	}
	if len(r.Photos) > 0 {
		c.PhotoReference = r.Photos[0].PhotoReference
	}
	if r.OpeningHours != nil {
		c.OpeningHours = r.OpeningHours.WeekdayText
	}
	return c
}
