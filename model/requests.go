package model

// LocationRequest 緯度経度の組（クライアント互換のため文字列で受け取る）
type LocationRequest struct {
	Latitude  string `json:"latitude" binding:"required"`
	Longitude string `json:"longitude" binding:"required"`
}

// EditListItemRequest リストアイテムの追加・更新・削除リクエスト
type EditListItemRequest struct {
	Item   string `json:"item" binding:"required"`
	ListID string `json:"list_id" binding:"required"`
	ID     string `json:"id"` // 更新時のみ使用
}

// SearchNearbyRequest 周辺アイテム検索リクエスト
type SearchNearbyRequest struct {
	Location LocationRequest `json:"location" binding:"required"`
	ListID   string          `json:"list_id" binding:"required"`
	Radius   int             `json:"radius"` // 未指定時はデフォルト半径を使用
}

// GeoLocationRequest 位置情報レポート（プッシュ通知トークン付き）
type GeoLocationRequest struct {
	Location LocationRequest `json:"location" binding:"required"`
	ListID   string          `json:"list_id" binding:"required"`
	Radius   int             `json:"radius"` // 未指定時はデフォルト通知半径を使用
	Token    string          `json:"token" binding:"required"`
}

// LoadLocationsRequest 店舗データ読み込みリクエスト
type LoadLocationsRequest struct {
	Latitude  string `json:"latitude" binding:"required"`
	Longitude string `json:"longitude" binding:"required"`
}
