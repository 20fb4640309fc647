package public

import (
	"errors"

	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// TrackViewRequest 浏览记录请求
type TrackViewRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GetRecentlyViewed 获取最近浏览列表（新→旧）
func (h *Handler) GetRecentlyViewed(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	entries, err := h.RecentlyViewedService.Entries(deviceID)
	if err != nil {
		respondError(c, response.CodeInternal, "recently viewed fetch failed", err)
		return
	}
	response.Success(c, gin.H{"items": entries})
}

// TrackRecentlyViewed 记录一次商品浏览
func (h *Handler) TrackRecentlyViewed(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	var req TrackViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if err := h.RecentlyViewedService.Track(deviceID, req.ProductID); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "recently viewed update failed", err)
		return
	}
	response.Success(c, gin.H{"tracked": true})
}

// ClearRecentlyViewed 清空浏览记录
func (h *Handler) ClearRecentlyViewed(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	if err := h.RecentlyViewedService.Clear(deviceID); err != nil {
		respondError(c, response.CodeInternal, "recently viewed update failed", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
