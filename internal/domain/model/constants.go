package model

// 周辺検索で使用する半径の定数（メートル）
const (
	// DefaultSearchRadiusMeters 周辺アイテム検索のデフォルト半径
	DefaultSearchRadiusMeters = 200

	// DefaultNotifyRadiusMeters 位置情報通知のデフォルト半径
	DefaultNotifyRadiusMeters = 10000

	// FallbackRadiusMeters ローカルデータが空だった場合に広げる半径
	FallbackRadiusMeters = 3000

	// DiscoveryRadiusMeters コールドリージョンでPlaces APIから取得する半径
	DiscoveryRadiusMeters = 50000
)

// CanonicalGroceryTag grocery系タグの正規化後の値
const CanonicalGroceryTag = "grocery_or_supermarket"

// StoreTypes 保存対象として受け入れる店舗カテゴリの許可リスト
// Places APIのtypesのいずれかがここに含まれる店舗のみ保存する
var StoreTypes = []string{
	"atm",
	"bakery",
	"bank",
	"bar",
	"beauty_salon",
	"bicycle_store",
	"book_store",
	"cafe",
	"car_rental",
	"car_repair",
	"car_wash",
	"clothing_store",
	"convenience_store",
	"department_store",
	"drugstore",
	"electronics_store",
	"florist",
	"furniture_store",
	"gas_station",
	"hair_care",
	"hardware_store",
	"home_goods_store",
	"jewelry_store",
	"liquor_store",
	"pet_store",
	"pharmacy",
	"shoe_store",
	"shopping_mall",
	"store",
	"grocery_or_supermarket",
}

var storeTypeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(StoreTypes))
	for _, t := range StoreTypes {
		set[t] = struct{}{}
	}
	return set
}()

// IsAcceptedStoreType カテゴリが許可リストに含まれているかチェック
func IsAcceptedStoreType(category string) bool {
	_, ok := storeTypeSet[category]
	return ok
}

// HasAcceptedStoreType カテゴリ配列に許可リストのカテゴリが1つでも含まれているかチェック
func HasAcceptedStoreType(categories []string) bool {
	for _, c := range categories {
		if IsAcceptedStoreType(c) {
			return true
		}
	}
	return false
}
