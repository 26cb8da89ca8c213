package service

import (
	"context"
	"log"
	"strings"

	"GetList-App/internal/domain/model"
	"GetList-App/internal/domain/repository"
)

// NearbyItemsService リストのアイテムと周辺店舗を突き合わせて
// 「アイテム → 扱っている周辺店舗」のグループ化された結果を作るサービス
type NearbyItemsService interface {
	// FindNearbyItems 指定座標の周辺店舗でリストのアイテムが買える場所を検索する
	// リストが存在しない場合やマッチがない場合は空のスライスを返す
	FindNearbyItems(ctx context.Context, listID string, lat, lng float64, radiusMeters int) []model.NearbyItem
}

// nearbyItemsServiceImpl NearbyItemsServiceの実装
type nearbyItemsServiceImpl struct {
	cacheService LocationCacheService
	listsRepo    repository.ListsRepository
}

// NewNearbyItemsService 新しいNearbyItemsServiceインスタンスを作成
func NewNearbyItemsService(cacheService LocationCacheService, listsRepo repository.ListsRepository) NearbyItemsService {
	return &nearbyItemsServiceImpl{
		cacheService: cacheService,
		listsRepo:    listsRepo,
	}
}

// FindNearbyItems 周辺店舗の取得 → リストの読み込み → マッチング → グループ化を行う
func (s *nearbyItemsServiceImpl) FindNearbyItems(ctx context.Context, listID string, lat, lng float64, radiusMeters int) []model.NearbyItem {
	locations := s.cacheService.NearbyLocations(ctx, lat, lng, radiusMeters)

	userList, err := s.listsRepo.GetList(ctx, listID)
	if err != nil {
		log.Printf("❌ リスト %s の取得に失敗: %v", listID, err)
	}

	var items []model.ListItem
	if userList != nil {
		items = userList.Items
	}

	matches := matchItemsToStores(items, locations)
	return groupMatchesByItem(matches)
}

// matchItemsToStores 店舗のプライマリカテゴリがアイテムのタグに含まれていればマッチとして記録する
func matchItemsToStores(items []model.ListItem, locations []model.StoreLocation) []model.ItemMatch {
	var matches []model.ItemMatch
	for _, item := range items {
		for _, location := range locations {
			primary := location.PrimaryCategory()
			if primary == "" || !strings.Contains(item.Tag, primary) {
				continue
			}
			coords := location.ToLocation()
			matches = append(matches, model.ItemMatch{
				Item:   item.Item,
				ItemID: item.ID,
				Store:  location.Name,
				Location: model.StoreLocationDetail{
					Address: location.Vicinity,
					PlaceID: location.PlaceID,
					Coords:  []float64{coords.Latitude, coords.Longitude},
				},
			})
		}
	}
	return matches
}

// groupMatchesByItem マッチをアイテム名でグループ化する
// 結果の順序は最初にマッチした順を保つ。グループのIDは最後に記録されたマッチのIDになる
func groupMatchesByItem(matches []model.ItemMatch) []model.NearbyItem {
	combined := make(map[string]*model.NearbyItem)
	var order []string

	for _, match := range matches {
		entry := model.StoreEntry{
			Name:     match.Store,
			Location: match.Location,
		}

		if existing, ok := combined[match.Item]; ok {
			existing.ID = match.ItemID
			existing.Stores = append(existing.Stores, entry)
			continue
		}

		combined[match.Item] = &model.NearbyItem{
			Item:   match.Item,
			ID:     match.ItemID,
			Stores: []model.StoreEntry{entry},
		}
		order = append(order, match.Item)
	}

	results := make([]model.NearbyItem, 0, len(order))
	for _, name := range order {
		results = append(results, *combined[name])
	}
	return results
}
