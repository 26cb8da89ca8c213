package service

import (
	"context"
	"log"

	"GetList-App/internal/domain/model"
	"GetList-App/internal/domain/repository"
)

// LocationCacheService ローカルの店舗位置データが不足している場合に
// Places APIから取得して補充する、周辺店舗検索のサービス
type LocationCacheService interface {
	// NearbyLocations 指定座標から半径radiusMeters以内の店舗を取得する
	// 失敗時は空のスライスを返す（呼び出し側は空を通常ケースとして扱う）
	NearbyLocations(ctx context.Context, lat, lng float64, radiusMeters int) []model.StoreLocation
}

// locationCacheServiceImpl LocationCacheServiceの実装
type locationCacheServiceImpl struct {
	locationsRepo  repository.LocationsRepository
	placesProvider repository.PlacesProvider
}

// NewLocationCacheService 新しいLocationCacheServiceインスタンスを作成
func NewLocationCacheService(locationsRepo repository.LocationsRepository, placesProvider repository.PlacesProvider) LocationCacheService {
	return &locationCacheServiceImpl{
		locationsRepo:  locationsRepo,
		placesProvider: placesProvider,
	}
}

// NearbyLocations 3段階のフォールバックで周辺店舗を取得する
// 1. 指定半径で検索
// 2. 空ならフォールバック半径(3000m)で再検索
// 3. それでも空ならコールドリージョンとみなしてPlaces APIから取得・保存し、元の半径で再検索
func (s *locationCacheServiceImpl) NearbyLocations(ctx context.Context, lat, lng float64, radiusMeters int) []model.StoreLocation {
	locations, err := s.locationsRepo.FindNearby(ctx, lat, lng, radiusMeters)
	if err != nil {
		log.Printf("❌ 周辺店舗の検索に失敗: %v", err)
		return []model.StoreLocation{}
	}

	if len(locations) > 0 {
		return locations
	}

	// フォールバック半径で周辺にデータがあるか確認
	log.Printf("周辺に店舗が見つかりません。新しい店舗を読み込むべきか確認します")
	fallback, err := s.locationsRepo.FindNearby(ctx, lat, lng, model.FallbackRadiusMeters)
	if err != nil {
		log.Printf("❌ フォールバック半径での検索に失敗: %v", err)
		return []model.StoreLocation{}
	}

	if len(fallback) > 0 {
		return fallback
	}

	// コールドリージョン: Places APIから店舗を取得して保存する
	log.Printf("Places APIから新しい店舗を読み込みます")
	if err := s.loadLocations(ctx, lat, lng); err != nil {
		log.Printf("❌ 店舗の読み込みに失敗: %v", err)
		return []model.StoreLocation{}
	}

	locations, err = s.locationsRepo.FindNearby(ctx, lat, lng, radiusMeters)
	if err != nil {
		log.Printf("❌ 読み込み後の再検索に失敗: %v", err)
		return []model.StoreLocation{}
	}

	return locations
}

// loadLocations Places APIから店舗を取得し、許可リストのカテゴリを持つものだけ保存する
func (s *locationCacheServiceImpl) loadLocations(ctx context.Context, lat, lng float64) error {
	results, err := s.placesProvider.SearchNearby(ctx, lat, lng, model.DiscoveryRadiusMeters)
	if err != nil {
		return err
	}

	var docs []model.StoreLocation
	for _, result := range results {
		if model.HasAcceptedStoreType(result.Types) {
			docs = append(docs, result.ToStoreLocation())
		}
	}

	log.Printf("✅ %d件の店舗を取得、%d件を保存します", len(results), len(docs))

	if len(docs) == 0 {
		return nil
	}

	if _, err := s.locationsRepo.InsertMany(ctx, docs); err != nil {
		return err
	}
	return s.locationsRepo.EnsureGeoIndex(ctx)
}
