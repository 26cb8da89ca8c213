package model

// Location 緯度経度を表す基本的な型（周辺検索などで使用）
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geometry 位置情報のポイント表現
// Coordinates は [latitude, longitude] の順で保持する（保存・検索で常に同じ軸順を使う）
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// NewPointGeometry 緯度経度からPoint Geometryを作成
func NewPointGeometry(lat, lng float64) *Geometry {
	return &Geometry{
		Type:        "Point",
		Coordinates: []float64{lat, lng},
	}
}

// StoreLocation 周辺検索の対象となる店舗の位置情報モデル
type StoreLocation struct {
	ID       string    `json:"id" db:"id"`             // ユニークな店舗ID
	Types    []string  `json:"types" db:"types"`       // カテゴリ（先頭がプライマリカテゴリ）
	Name     string    `json:"name" db:"name"`         // 店舗名
	Vicinity string    `json:"vicinity" db:"vicinity"` // 住所（Places APIのvicinity）
	PlaceID  string    `json:"placeId" db:"place_id"`  // Google PlacesのプレースID
	Location *Geometry `json:"location" db:"location"` // 位置情報
}

// PrimaryCategory 店舗のプライマリカテゴリ（カテゴリ配列の先頭）を返す
// アイテムとのマッチングにはこのカテゴリのみを使用する
func (s *StoreLocation) PrimaryCategory() string {
	if len(s.Types) == 0 {
		return ""
	}
	return s.Types[0]
}

// ToLocation StoreLocationの位置情報をLocation型に変換
func (s *StoreLocation) ToLocation() Location {
	if s.Location != nil && len(s.Location.Coordinates) >= 2 {
		return Location{
			Latitude:  s.Location.Coordinates[0],
			Longitude: s.Location.Coordinates[1],
		}
	}
	return Location{}
}

// PlaceResult Places APIから取得した店舗1件分の情報
type PlaceResult struct {
	Types     []string `json:"types"`
	Name      string   `json:"name"`
	Vicinity  string   `json:"vicinity"`
	PlaceID   string   `json:"place_id"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
}

// ToStoreLocation PlaceResultをStoreLocationに変換（IDは保存時に採番）
func (p *PlaceResult) ToStoreLocation() StoreLocation {
	return StoreLocation{
		Types:    p.Types,
		Name:     p.Name,
		Vicinity: p.Vicinity,
		PlaceID:  p.PlaceID,
		Location: NewPointGeometry(p.Latitude, p.Longitude),
	}
}
