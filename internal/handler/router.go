package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// corsMiddleware すべてのオリジンを許可するCORSミドルウェア
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// SetupRouter すべてのAPIルートを登録したGinルーターを作成する
func SetupRouter(listHandler *ListHandler, nearbyHandler *NearbyHandler, notificationHandler *NotificationHandler) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "GetList-App"})
	})

	// リスト操作
	r.GET("/api/create_list", listHandler.CreateList)
	r.GET("/api/get_list", listHandler.GetList)
	r.POST("/api/add_list_item", listHandler.AddListItem)
	r.POST("/api/update_list_item", listHandler.UpdateListItem)
	r.POST("/api/remove_list_item", listHandler.RemoveListItem)

	// 周辺検索と店舗データ
	r.POST("/api/items_nearby", nearbyHandler.ItemsNearby)
	r.POST("/api/load_locations", nearbyHandler.LoadLocations)

	// 位置情報レポートとプッシュ通知
	r.POST("/api/geolocation", notificationHandler.GeoLocation)
	r.POST("/api/search_nearby", notificationHandler.SearchNearby)
	r.GET("/api/send_push", notificationHandler.SendPush)

	return r
}
