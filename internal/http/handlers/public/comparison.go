package public

import (
	"errors"

	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ComparisonItemRequest 对比项请求
type ComparisonItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GetComparison 获取对比中的商品
func (h *Handler) GetComparison(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	products, err := h.ComparisonService.List(c.Request.Context(), deviceID)
	if err != nil {
		respondError(c, response.CodeInternal, "comparison fetch failed", err)
		return
	}
	response.Success(c, gin.H{"items": products})
}

// AddComparisonItem 加入对比；满员或重复时 added 返回 false
func (h *Handler) AddComparisonItem(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	var req ComparisonItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	added, err := h.ComparisonService.Add(c.Request.Context(), deviceID, req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "comparison update failed", err)
		return
	}
	response.Success(c, gin.H{"added": added})
}

// DeleteComparisonItem 移出对比
func (h *Handler) DeleteComparisonItem(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	if err := h.ComparisonService.Remove(c.Request.Context(), deviceID, c.Param("product_id")); err != nil {
		respondError(c, response.CodeInternal, "comparison update failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearComparison 清空对比栏
func (h *Handler) ClearComparison(c *gin.Context) {
	deviceID, ok := getDeviceID(c)
	if !ok {
		return
	}
	if err := h.ComparisonService.Clear(c.Request.Context(), deviceID); err != nil {
		respondError(c, response.CodeInternal, "comparison update failed", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
