package usecase

import (
	"context"
	"fmt"
	"log"

	"GetList-App/internal/domain/model"
	"GetList-App/internal/domain/repository"
	"GetList-App/internal/domain/service"
)

// NearbyItemsUseCase 周辺アイテム検索と店舗データ読み込みのユースケース
type NearbyItemsUseCase interface {
	// ItemsNearby リストのアイテムが買える周辺店舗をグループ化して返す
	ItemsNearby(ctx context.Context, listID string, lat, lng float64, radiusMeters int) []model.NearbyItem

	// LoadLocations 指定座標の周辺店舗をPlaces APIから距離順で取得して保存する
	LoadLocations(ctx context.Context, lat, lng float64) (int, error)
}

// nearbyItemsUseCaseImpl NearbyItemsUseCaseの実装
type nearbyItemsUseCaseImpl struct {
	nearbyService  service.NearbyItemsService
	locationsRepo  repository.LocationsRepository
	placesProvider repository.PlacesProvider
}

// NewNearbyItemsUseCase 新しいNearbyItemsUseCaseインスタンスを作成
func NewNearbyItemsUseCase(
	nearbyService service.NearbyItemsService,
	locationsRepo repository.LocationsRepository,
	placesProvider repository.PlacesProvider,
) NearbyItemsUseCase {
	return &nearbyItemsUseCaseImpl{
		nearbyService:  nearbyService,
		locationsRepo:  locationsRepo,
		placesProvider: placesProvider,
	}
}

// ItemsNearby リストのアイテムが買える周辺店舗を検索する
func (u *nearbyItemsUseCaseImpl) ItemsNearby(ctx context.Context, listID string, lat, lng float64, radiusMeters int) []model.NearbyItem {
	return u.nearbyService.FindNearbyItems(ctx, listID, lat, lng, radiusMeters)
}

// LoadLocations Places APIから距離順で店舗を取得してそのまま保存する
// キャッシュ補充と異なり、カテゴリの許可リストによるフィルタリングは行わない（管理用途）
func (u *nearbyItemsUseCaseImpl) LoadLocations(ctx context.Context, lat, lng float64) (int, error) {
	results, err := u.placesProvider.SearchNearbyRanked(ctx, lat, lng)
	if err != nil {
		return 0, fmt.Errorf("Places APIからの店舗取得に失敗: %w", err)
	}

	docs := make([]model.StoreLocation, 0, len(results))
	for _, result := range results {
		docs = append(docs, result.ToStoreLocation())
	}

	count, err := u.locationsRepo.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("店舗データの保存に失敗: %w", err)
	}

	if err := u.locationsRepo.EnsureGeoIndex(ctx); err != nil {
		return 0, fmt.Errorf("地理空間インデックスの作成に失敗: %w", err)
	}

	log.Printf("✅ %d件の店舗を保存しました", count)
	return count, nil
}
