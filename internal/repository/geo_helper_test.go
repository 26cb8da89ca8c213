package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GetList-App/internal/domain/model"
)

func TestDistanceMeters(t *testing.T) {
	// 同一点は距離0
	assert.InDelta(t, 0, DistanceMeters(43.81, -79.46, 43.81, -79.46), 0.001)

	// 緯度0.01度 ≈ 1.11km
	d := DistanceMeters(43.81, -79.46, 43.82, -79.46)
	assert.InDelta(t, 1110, d, 10)
}

func TestWithinRadius(t *testing.T) {
	store := model.StoreLocation{
		Name:     "ACME",
		Types:    []string{"grocery_or_supermarket"},
		Location: model.NewPointGeometry(43.81, -79.46),
	}

	// 約100m離れた点
	assert.True(t, WithinRadius(&store, 43.8101, -79.4599, 200))
	assert.False(t, WithinRadius(&store, 43.8101, -79.4599, 10))

	// 位置情報がない店舗は常にfalse
	assert.False(t, WithinRadius(&model.StoreLocation{Name: "NoLoc"}, 43.81, -79.46, 1000))
}

func TestGeoPointConversion(t *testing.T) {
	loc := &model.Location{Latitude: 43.81, Longitude: -79.46}

	point := LocationToGeoPoint(loc)
	require.NotNil(t, point)
	assert.Equal(t, "Point", point.Type)
	// 座標は [latitude, longitude] の順で保持する
	assert.Equal(t, []float64{43.81, -79.46}, point.Coordinates)

	back := GeoPointToLocation(point)
	require.NotNil(t, back)
	assert.Equal(t, *loc, *back)

	assert.Nil(t, LocationToGeoPoint(nil))
	assert.Nil(t, GeoPointToLocation(nil))
	assert.Nil(t, GeoPointToLocation(&GeoPoint{Type: "Point", Coordinates: []float64{1}}))
}
