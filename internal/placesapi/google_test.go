package placesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTextBiasesQuery(t *testing.T) {
	var gotQuery, gotLanguage string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotLanguage = r.URL.Query().Get("language")
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"place_id": "g1",
				"name": "Goiko",
				"formatted_address": "Calle Mayor 1, Madrid",
				"rating": 4.4,
				"geometry": {"location": {"lat": 40.4, "lng": -3.7}}
			}]
		}`))
	}))
	defer ts.Close()

	c := NewClient("test-key")
	c.baseURL = ts.URL

	candidates, err := c.SearchText(context.Background(), "goiko")
	require.NoError(t, err)

	assert.Equal(t, "goiko hamburguesería", gotQuery)
	assert.Equal(t, "es", gotLanguage)

	require.Len(t, candidates, 1)
	assert.Equal(t, "g1", candidates[0].PlaceID)
	assert.Equal(t, "Calle Mayor 1, Madrid", candidates[0].Address)
	assert.InDelta(t, 40.4, candidates[0].Latitude, 1e-9)
}

func TestSearchTextEmptyQuery(t *testing.T) {
	c := NewClient("test-key")

	candidates, err := c.SearchText(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestSearchTextZeroResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer ts.Close()

	c := NewClient("test-key")
	c.baseURL = ts.URL

	candidates, err := c.SearchText(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestSearchTextAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED"}`))
	}))
	defer ts.Close()

	c := NewClient("bad-key")
	c.baseURL = ts.URL

	_, err := c.SearchText(context.Background(), "goiko")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestSearchNearbyEnrichesWithDetails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/nearbysearch/json":
			assert.Equal(t, "5000", r.URL.Query().Get("radius"))
			assert.Equal(t, "restaurant", r.URL.Query().Get("type"))
			w.Write([]byte(`{
				"status": "OK",
				"results": [
					{"place_id": "g1", "name": "Goiko"},
					{"place_id": "g2", "name": "Broken"}
				]
			}`))
		case r.URL.Path == "/details/json" && r.URL.Query().Get("place_id") == "g1":
			w.Write([]byte(`{
				"status": "OK",
				"result": {
					"name": "Goiko",
					"formatted_address": "Calle Mayor 1, Madrid",
					"rating": 4.4,
					"user_ratings_total": 812,
					"geometry": {"location": {"lat": 40.4, "lng": -3.7}},
					"photos": [{"photo_reference": "ref-1"}]
				}
			}`))
		default:
			// The second hit's details lookup fails; the hit is dropped.
			w.Write([]byte(`{"status": "NOT_FOUND"}`))
		}
	}))
	defer ts.Close()

	c := NewClient("test-key")
	c.baseURL = ts.URL

	candidates, err := c.SearchNearby(context.Background(), 40.4, -3.7, 0)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "g1", candidates[0].PlaceID)
	assert.Equal(t, 812, candidates[0].UserRatingsTotal)
	assert.Equal(t, "ref-1", candidates[0].PhotoReference)
}
