package repository

import (
	"context"

	"GetList-App/internal/domain/model"
)

// LocationsRepository 店舗位置情報の永続化と半径検索を提供するリポジトリ
type LocationsRepository interface {
	// FindNearby 指定座標から半径radiusMeters以内の店舗を距離順で取得
	FindNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]model.StoreLocation, error)

	// InsertMany 複数の店舗位置情報を保存し、保存件数を返す
	InsertMany(ctx context.Context, locations []model.StoreLocation) (int, error)

	// EnsureGeoIndex 半径検索用の地理空間インデックスの存在を保証する
	EnsureGeoIndex(ctx context.Context) error
}
