package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainmodel "GetList-App/internal/domain/model"
	"GetList-App/internal/usecase"
	"GetList-App/model"
)

// NearbyHandler 周辺アイテム検索APIのハンドラー
type NearbyHandler struct {
	nearbyUseCase usecase.NearbyItemsUseCase
}

// NewNearbyHandler NearbyHandlerの新しいインスタンスを作成
func NewNearbyHandler(nearbyUseCase usecase.NearbyItemsUseCase) *NearbyHandler {
	return &NearbyHandler{
		nearbyUseCase: nearbyUseCase,
	}
}

// parseLatLng 文字列の緯度経度をパースする
func parseLatLng(latStr, lngStr string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, err
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}

// ItemsNearby POST /api/items_nearby - リストのアイテムが買える周辺店舗を検索する
func (h *NearbyHandler) ItemsNearby(c *gin.Context) {
	var req model.SearchNearbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	lat, lng, err := parseLatLng(req.Location.Latitude, req.Location.Longitude)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid latitude/longitude value",
		})
		return
	}

	radius := req.Radius
	if radius == 0 {
		radius = domainmodel.DefaultSearchRadiusMeters
	}

	items := h.nearbyUseCase.ItemsNearby(c.Request.Context(), req.ListID, lat, lng, radius)
	c.JSON(http.StatusOK, items)
}

// LoadLocations POST /api/load_locations - Places APIから店舗を取得して保存する
func (h *NearbyHandler) LoadLocations(c *gin.Context) {
	var req model.LoadLocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	lat, lng, err := parseLatLng(req.Latitude, req.Longitude)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid latitude/longitude value",
		})
		return
	}

	if _, err := h.nearbyUseCase.LoadLocations(c.Request.Context(), lat, lng); err != nil {
		log.Printf("❌ load_locationsに失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Server error"})
		return
	}

	c.JSON(http.StatusOK, "OK")
}
