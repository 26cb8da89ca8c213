package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"GetList-App/internal/domain/model"
	"GetList-App/internal/domain/repository"
	"GetList-App/internal/infrastructure/database"
)

// SupabaseLocationsRepository Supabase (PostgREST) 経由の店舗位置情報リポジトリ
// 半径検索はクライアント側の距離計算で行う簡易実装
type SupabaseLocationsRepository struct {
	client *database.SupabaseClient
}

// NewSupabaseLocationsRepository 新しいSupabaseLocationsRepositoryインスタンスを作成
func NewSupabaseLocationsRepository(client *database.SupabaseClient) repository.LocationsRepository {
	return &SupabaseLocationsRepository{
		client: client,
	}
}

// supabaseLocationRow locationsテーブルの行のJSON表現
type supabaseLocationRow struct {
	ID       string    `json:"id"`
	Types    []string  `json:"types"`
	Name     string    `json:"name"`
	Vicinity string    `json:"vicinity"`
	PlaceID  string    `json:"place_id"`
	Location *GeoPoint `json:"location"`
}

func (row *supabaseLocationRow) toStoreLocation() model.StoreLocation {
	loc := model.StoreLocation{
		ID:       row.ID,
		Types:    row.Types,
		Name:     row.Name,
		Vicinity: row.Vicinity,
		PlaceID:  row.PlaceID,
	}
	if point := GeoPointToLocation(row.Location); point != nil {
		loc.Location = model.NewPointGeometry(point.Latitude, point.Longitude)
	}
	return loc
}

// FindNearby 全店舗を取得してクライアント側で半径フィルタリングする
func (r *SupabaseLocationsRepository) FindNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]model.StoreLocation, error) {
	data, count, err := r.client.GetClient().From("locations").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("店舗データの取得失敗: %w", err)
	}
	_ = count

	var rows []supabaseLocationRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("店舗データのJSONアンマーシャル失敗: %w", err)
	}

	var nearby []model.StoreLocation
	for _, row := range rows {
		loc := row.toStoreLocation()
		if WithinRadius(&loc, lat, lng, radiusMeters) {
			nearby = append(nearby, loc)
		}
	}

	// 距離順にソート（PostGIS実装と同じ並び順にする）
	sort.SliceStable(nearby, func(i, j int) bool {
		pi := nearby[i].ToLocation()
		pj := nearby[j].ToLocation()
		return DistanceMeters(lat, lng, pi.Latitude, pi.Longitude) <
			DistanceMeters(lat, lng, pj.Latitude, pj.Longitude)
	})

	return nearby, nil
}

// InsertMany 複数の店舗位置情報を保存する
func (r *SupabaseLocationsRepository) InsertMany(ctx context.Context, locations []model.StoreLocation) (int, error) {
	if len(locations) == 0 {
		return 0, nil
	}

	rows := make([]supabaseLocationRow, 0, len(locations))
	for _, loc := range locations {
		id := loc.ID
		if id == "" {
			id = uuid.New().String()
		}
		point := loc.ToLocation()
		rows = append(rows, supabaseLocationRow{
			ID:       id,
			Types:    loc.Types,
			Name:     loc.Name,
			Vicinity: loc.Vicinity,
			PlaceID:  loc.PlaceID,
			Location: LocationToGeoPoint(&point),
		})
	}

	_, _, err := r.client.GetClient().From("locations").Insert(rows, false, "", "", "").Execute()
	if err != nil {
		return 0, fmt.Errorf("店舗データの保存に失敗: %w", err)
	}

	return len(rows), nil
}

// EnsureGeoIndex PostgRESTからはインデックスを作成できないため何もしない
// インデックスはSupabase側のマイグレーションで管理する
func (r *SupabaseLocationsRepository) EnsureGeoIndex(ctx context.Context) error {
	return nil
}
