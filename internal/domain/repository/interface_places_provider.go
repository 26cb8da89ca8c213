package repository

import (
	"context"

	"GetList-App/internal/domain/model"
)

// PlacesProvider 外部のプレイスディレクトリ（Google Places API）から店舗を検索するプロバイダ
type PlacesProvider interface {
	// SearchNearby 指定座標から半径radiusMeters以内の店舗を検索する
	SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]model.PlaceResult, error)

	// SearchNearbyRanked 半径指定なしで距離順に店舗を検索する
	SearchNearbyRanked(ctx context.Context, lat, lng float64) ([]model.PlaceResult, error)
}
