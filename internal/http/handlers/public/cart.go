package public

import (
	"errors"

	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车项请求
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// CartQuantityRequest 数量更新请求
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	items, err := h.CartService.List(deviceID)
	if err != nil {
		respondError(c, response.CodeInternal, "cart fetch failed", err)
		return
	}
	totals, err := h.CartService.Totals(deviceID)
	if err != nil {
		respondError(c, response.CodeInternal, "cart fetch failed", err)
		return
	}
	response.Success(c, gin.H{
		"items":       items,
		"total_price": totals.TotalPrice,
		"total_items": totals.TotalItems,
	})
}

// AddCartItem 加入购物车（重复加入累加数量）
func (h *Handler) AddCartItem(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if err := h.CartService.AddItem(deviceID, req.ProductID, req.Quantity); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "cart update failed", err)
		return
	}
	response.Success(c, gin.H{"added": true})
}

// UpdateCartItem 更新购物车项数量；数量小于等于 0 等同移除
func (h *Handler) UpdateCartItem(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if err := h.CartService.UpdateQuantity(deviceID, c.Param("product_id"), req.Quantity); err != nil {
		respondError(c, response.CodeInternal, "cart update failed", err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteCartItem 移除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(deviceID, c.Param("product_id")); err != nil {
		respondError(c, response.CodeInternal, "cart update failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(deviceID); err != nil {
		respondError(c, response.CodeInternal, "cart update failed", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
