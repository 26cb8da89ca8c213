package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const placesResponseJSON = `{
	"results": [
		{
			"types": ["grocery_or_supermarket", "food", "store"],
			"name": "ACME",
			"vicinity": "1 Main St, Toronto",
			"place_id": "acme-1",
			"geometry": {"location": {"lat": 43.81, "lng": -79.46}}
		},
		{
			"types": ["bakery"],
			"name": "Hot Bakes",
			"vicinity": "2 Main St, Toronto",
			"place_id": "hb-1",
			"geometry": {"location": {"lat": 43.811, "lng": -79.461}}
		}
	],
	"status": "OK"
}`

func TestGooglePlacesProvider_SearchNearby(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(placesResponseJSON))
	}))
	defer server.Close()

	provider := NewGooglePlacesProviderWithBaseURL("test-key", server.URL)
	results, err := provider.SearchNearby(context.Background(), 43.8101, -79.4599, 50000)

	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "ACME", results[0].Name)
	assert.Equal(t, "1 Main St, Toronto", results[0].Vicinity)
	assert.Equal(t, "acme-1", results[0].PlaceID)
	assert.Equal(t, 43.81, results[0].Latitude)
	assert.Equal(t, -79.46, results[0].Longitude)
	assert.Equal(t, []string{"grocery_or_supermarket", "food", "store"}, results[0].Types)

	// リクエストパラメータの確認
	assert.Equal(t, "store", gotQuery["type"])
	assert.Equal(t, "50000", gotQuery["radius"])
	assert.Equal(t, "test-key", gotQuery["key"])
	assert.Equal(t, "43.810100,-79.459900", gotQuery["location"])
}

func TestGooglePlacesProvider_SearchNearbyRanked(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(placesResponseJSON))
	}))
	defer server.Close()

	provider := NewGooglePlacesProviderWithBaseURL("test-key", server.URL)
	results, err := provider.SearchNearbyRanked(context.Background(), 43.8101, -79.4599)

	require.NoError(t, err)
	assert.Len(t, results, 2)

	// 距離順モードでは半径ではなくrankbyを指定する
	assert.Equal(t, "distance", gotQuery["rankby"])
	assert.Empty(t, gotQuery["radius"])
}

func TestGooglePlacesProvider_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewGooglePlacesProviderWithBaseURL("test-key", server.URL)
	_, err := provider.SearchNearby(context.Background(), 43.81, -79.46, 200)

	assert.Error(t, err)
}
