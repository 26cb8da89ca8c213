package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"GetList-App/internal/domain/model"
	"GetList-App/internal/domain/repository"
)

// GooglePlacesProvider はGoogle Places Nearby Search APIを使用した店舗検索の実装
type GooglePlacesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGooglePlacesProvider は新しいプロバイダを生成する
func NewGooglePlacesProvider(apiKey string) repository.PlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		baseURL:    "https://maps.googleapis.com/maps/api/place/nearbysearch/json",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewGooglePlacesProviderWithBaseURL テスト用にベースURLを差し替えられるコンストラクタ
func NewGooglePlacesProviderWithBaseURL(apiKey, baseURL string) repository.PlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchNearby は指定座標から半径radiusMeters以内のstoreタイプの店舗を検索する
func (g *GooglePlacesProvider) SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]model.PlaceResult, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("type", "store")
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("key", g.apiKey)

	return g.search(ctx, params)
}

// SearchNearbyRanked は半径指定なしで距離順に店舗を検索する
func (g *GooglePlacesProvider) SearchNearbyRanked(ctx context.Context, lat, lng float64) ([]model.PlaceResult, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("type", "store")
	params.Set("rankby", "distance")
	params.Set("key", g.apiKey)

	return g.search(ctx, params)
}

func (g *GooglePlacesProvider) search(ctx context.Context, params url.Values) ([]model.PlaceResult, error) {
	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Places APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Places APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp googlePlacesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	results := make([]model.PlaceResult, 0, len(apiResp.Results))
	for _, place := range apiResp.Results {
		results = append(results, model.PlaceResult{
			Types:     place.Types,
			Name:      place.Name,
			Vicinity:  place.Vicinity,
			PlaceID:   place.PlaceID,
			Latitude:  place.Geometry.Location.Lat,
			Longitude: place.Geometry.Location.Lng,
		})
	}
	return results, nil
}

// --- Places APIのレスポンスをパースするための構造体 ---

type googlePlacesResponse struct {
	Results      []placeObject `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

type placeObject struct {
	Types    []string      `json:"types"`
	Name     string        `json:"name"`
	Vicinity string        `json:"vicinity"`
	PlaceID  string        `json:"place_id"`
	Geometry placeGeometry `json:"geometry"`
}

type placeGeometry struct {
	Location placeLatLng `json:"location"`
}

type placeLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
