package public

import (
	"errors"

	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/http/response"
	"github.com/rephone-next/internal/service"
	"github.com/rephone-next/internal/store"

	"github.com/gin-gonic/gin"
)

// WishlistItemRequest 心愿单条目请求
type WishlistItemRequest struct {
	ProductID     string   `json:"product_id" binding:"required"`
	CollectionIDs []string `json:"collection_ids"`
}

// CollectionRequest 创建收藏夹请求
type CollectionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// CollectionUpdateRequest 更新收藏夹请求（仅更新给出的字段）
type CollectionUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
}

// CollectionItemRequest 收藏夹条目请求
type CollectionItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GetWishlist 获取心愿单（条目 + 收藏夹）
func (h *Handler) GetWishlist(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	items, err := h.WishlistService.Items(deviceID)
	if err != nil {
		respondError(c, response.CodeInternal, "wishlist fetch failed", err)
		return
	}
	collections, err := h.WishlistService.Collections(deviceID)
	if err != nil {
		respondError(c, response.CodeInternal, "wishlist fetch failed", err)
		return
	}
	response.Success(c, gin.H{
		"items":       items,
		"collections": collections,
	})
}

// AddWishlistItem 加入心愿单（重复加入保留原记录）
func (h *Handler) AddWishlistItem(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	var req WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if err := h.WishlistService.AddItem(deviceID, req.ProductID, req.CollectionIDs); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "wishlist update failed", err)
		return
	}
	response.Success(c, gin.H{"added": true})
}

// DeleteWishlistItem 移出心愿单
func (h *Handler) DeleteWishlistItem(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	if err := h.WishlistService.RemoveItem(deviceID, c.Param("product_id")); err != nil {
		respondError(c, response.CodeInternal, "wishlist update failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearWishlist 清空心愿单条目（收藏夹保留）
func (h *Handler) ClearWishlist(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	if err := h.WishlistService.Clear(deviceID); err != nil {
		respondError(c, response.CodeInternal, "wishlist update failed", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

// CreateCollection 创建收藏夹
func (h *Handler) CreateCollection(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	collection, err := h.WishlistService.CreateCollection(deviceID, service.CreateCollectionInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
	})
	if err != nil {
		if errors.Is(err, store.ErrCollectionColorInvalid) {
			respondError(c, response.CodeBadRequest, "collection color invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "collection create failed", err)
		return
	}
	response.Success(c, collection)
}

// UpdateCollection 更新收藏夹属性
func (h *Handler) UpdateCollection(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	var req CollectionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	err := h.WishlistService.UpdateCollection(deviceID, c.Param("collection_id"), store.CollectionUpdate{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrCollectionNotFound):
			respondError(c, response.CodeNotFound, "collection not found", nil)
		case errors.Is(err, store.ErrCollectionColorInvalid):
			respondError(c, response.CodeBadRequest, "collection color invalid", nil)
		default:
			respondError(c, response.CodeInternal, "collection update failed", err)
		}
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteCollection 删除收藏夹；内置收藏夹受保护不可删除
func (h *Handler) DeleteCollection(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	if err := h.WishlistService.DeleteCollection(deviceID, c.Param("collection_id")); err != nil {
		switch {
		case errors.Is(err, store.ErrCollectionNotFound):
			respondError(c, response.CodeNotFound, "collection not found", nil)
		case errors.Is(err, store.ErrCollectionProtected):
			respondError(c, response.CodeBadRequest, "collection protected", nil)
		default:
			respondError(c, response.CodeInternal, "collection delete failed", err)
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// GetCollectionItems 获取收藏夹内条目
func (h *Handler) GetCollectionItems(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	items, err := h.WishlistService.ItemsByCollection(deviceID, c.Param("collection_id"))
	if err != nil {
		if errors.Is(err, store.ErrCollectionNotFound) {
			respondError(c, response.CodeNotFound, "collection not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "wishlist fetch failed", err)
		return
	}
	response.Success(c, gin.H{"items": items})
}

// AddCollectionItem 将心愿单条目挂入收藏夹
func (h *Handler) AddCollectionItem(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	var req CollectionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if err := h.WishlistService.AddItemToCollection(deviceID, req.ProductID, c.Param("collection_id")); err != nil {
		if errors.Is(err, store.ErrCollectionNotFound) {
			respondError(c, response.CodeNotFound, "collection not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "collection update failed", err)
		return
	}
	response.Success(c, gin.H{"added": true})
}

// DeleteCollectionItem 将心愿单条目移出收藏夹
func (h *Handler) DeleteCollectionItem(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	if err := h.WishlistService.RemoveItemFromCollection(deviceID, c.Param("product_id"), c.Param("collection_id")); err != nil {
		if errors.Is(err, store.ErrCollectionNotFound) {
			respondError(c, response.CodeNotFound, "collection not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "collection update failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
