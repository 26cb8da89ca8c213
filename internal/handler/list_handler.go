package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"GetList-App/internal/usecase"
	"GetList-App/model"
)

// ListHandler 買い物リストAPIのハンドラー
type ListHandler struct {
	listUseCase usecase.ShoppingListUseCase
}

// NewListHandler ListHandlerの新しいインスタンスを作成
func NewListHandler(listUseCase usecase.ShoppingListUseCase) *ListHandler {
	return &ListHandler{
		listUseCase: listUseCase,
	}
}

// CreateList GET /api/create_list - リストが存在しない場合のみ作成する
func (h *ListHandler) CreateList(c *gin.Context) {
	listID := c.Query("list_id")
	if listID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "list_id parameter is required",
		})
		return
	}

	if err := h.listUseCase.EnsureList(c.Request.Context(), listID); err != nil {
		log.Printf("❌ create_listに失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Server error"})
		return
	}

	c.JSON(http.StatusOK, "OK")
}

// GetList GET /api/get_list - リストを取得する
func (h *ListHandler) GetList(c *gin.Context) {
	listID := c.Query("list_id")
	if listID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "list_id parameter is required",
		})
		return
	}

	lists, err := h.listUseCase.GetList(c.Request.Context(), listID)
	if err != nil {
		log.Printf("❌ get_listに失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Server error"})
		return
	}

	c.JSON(http.StatusOK, lists)
}

// AddListItem POST /api/add_list_item - アイテムをタグ付けして追加する
func (h *ListHandler) AddListItem(c *gin.Context) {
	var req model.EditListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if err := h.listUseCase.AddItem(c.Request.Context(), req.ListID, req.Item); err != nil {
		log.Printf("❌ add_list_itemに失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Server error"})
		return
	}

	c.JSON(http.StatusOK, "OK")
}

// UpdateListItem POST /api/update_list_item - IDが一致するアイテムを置き換える
func (h *ListHandler) UpdateListItem(c *gin.Context) {
	var req model.EditListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "id field is required for update",
		})
		return
	}

	if err := h.listUseCase.UpdateItem(c.Request.Context(), req.ListID, req.ID, req.Item); err != nil {
		log.Printf("❌ update_list_itemに失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Server error"})
		return
	}

	c.JSON(http.StatusOK, "OK")
}

// RemoveListItem POST /api/remove_list_item - テキストが一致するアイテムを削除する
func (h *ListHandler) RemoveListItem(c *gin.Context) {
	var req model.EditListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if err := h.listUseCase.RemoveItem(c.Request.Context(), req.ListID, req.Item); err != nil {
		log.Printf("❌ remove_list_itemに失敗: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Server error"})
		return
	}

	c.JSON(http.StatusOK, "OK")
}
