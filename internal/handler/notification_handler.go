package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	domainmodel "GetList-App/internal/domain/model"
	"GetList-App/internal/usecase"
	"GetList-App/model"
)

// NotificationHandler 位置情報レポートとプッシュ通知APIのハンドラー
type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
}

// NewNotificationHandler NotificationHandlerの新しいインスタンスを作成
func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

// GeoLocation POST /api/geolocation - デバイスの位置情報を受け取り周辺アイテムを通知する
func (h *NotificationHandler) GeoLocation(c *gin.Context) {
	h.searchAndNotify(c)
}

// SearchNearby POST /api/search_nearby - 周辺アイテムを検索して通知する
func (h *NotificationHandler) SearchNearby(c *gin.Context) {
	h.searchAndNotify(c)
}

func (h *NotificationHandler) searchAndNotify(c *gin.Context) {
	var req model.GeoLocationRequest
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
		radius = domainmodel.DefaultNotifyRadiusMeters
	}

	if err := h.notificationUseCase.NotifyNearbyItems(c.Request.Context(), req.ListID, lat, lng, radius, req.Token); err != nil {
		log.Printf("❌ 周辺アイテムの通知に失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Server error"})
		return
	}

	c.JSON(http.StatusOK, "OK")
}

// SendPush GET /api/send_push - 疎通確認用のプッシュ通知を送信する
func (h *NotificationHandler) SendPush(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "token parameter is required",
		})
		return
	}

	if err := h.notificationUseCase.SendPush(c.Request.Context(), token, "hello"); err != nil {
		log.Printf("❌ プッシュ通知の送信に失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Server error"})
		return
	}

	c.JSON(http.StatusOK, "OK")
}
