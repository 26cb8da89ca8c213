package model

// StoreLocationDetail マッチした店舗の位置詳細（APIレスポンス用）
// Coords は [latitude, longitude] の順
type StoreLocationDetail struct {
	Address string    `json:"address"`
	PlaceID string    `json:"placeId"`
	Coords  []float64 `json:"coords"`
}

// StoreEntry アイテムを扱っている周辺店舗1件
type StoreEntry struct {
	Name     string              `json:"name"`
	Location StoreLocationDetail `json:"location"`
}

// NearbyItem アイテム名ごとにグループ化された周辺店舗の検索結果
type NearbyItem struct {
	Item   string       `json:"item"`
	ID     string       `json:"id"`
	Stores []StoreEntry `json:"stores"`
}

// ItemMatch アイテムと店舗のマッチ1件（グループ化前の中間結果）
type ItemMatch struct {
	Item     string
	ItemID   string
	Store    string
	Location StoreLocationDetail
}
