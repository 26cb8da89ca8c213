package repository

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"GetList-App/internal/domain/model"
)

// GeoPoint 地理座標ポイントのJSON表現
// Coordinates は [latitude, longitude] の順（保存・検索で常に同じ軸順を使う）
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// LocationToGeoPoint model.Location をGeoPoint形式に変換
func LocationToGeoPoint(location *model.Location) *GeoPoint {
	if location == nil {
		return nil
	}
	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{location.Latitude, location.Longitude},
	}
}

// GeoPointToLocation GeoPoint を model.Location に変換
func GeoPointToLocation(geoPoint *GeoPoint) *model.Location {
	if geoPoint == nil || len(geoPoint.Coordinates) < 2 {
		return nil
	}
	return &model.Location{
		Latitude:  geoPoint.Coordinates[0],
		Longitude: geoPoint.Coordinates[1],
	}
}

// DistanceMeters 2点間の距離をメートルで計算する
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := orb.Point{lng1, lat1}
	p2 := orb.Point{lng2, lat2}
	return geo.Distance(p1, p2)
}

// WithinRadius 店舗が指定座標から半径radiusMeters以内にあるかチェック
func WithinRadius(loc *model.StoreLocation, lat, lng float64, radiusMeters int) bool {
	if loc == nil || loc.Location == nil || len(loc.Location.Coordinates) < 2 {
		return false
	}
	point := loc.ToLocation()
	return DistanceMeters(lat, lng, point.Latitude, point.Longitude) <= float64(radiusMeters)
}
