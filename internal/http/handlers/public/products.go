package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/http/response"
	"github.com/rephone-next/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetProducts 获取商品列表（筛选 + 排序 + 分页）
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter, err := parseProductFilter(c)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid filter parameters", err)
		return
	}

	products := h.Catalog.Filter(filter)
	products = catalog.SortProducts(products, c.DefaultQuery("sort", "featured"))

	total := int64(len(products))
	start := (page - 1) * pageSize
	if start > len(products) {
		start = len(products)
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products[start:end], pagination)
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.Catalog.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}
	response.Success(c, product)
}

// GetRelatedProducts 获取同品牌关联商品
func (h *Handler) GetRelatedProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if limit <= 0 || limit > 20 {
		limit = 4
	}
	related, err := h.Catalog.Related(c.Param("id"), limit)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}
	response.Success(c, gin.H{"items": related})
}

// GetFacets 获取筛选维度统计
func (h *Handler) GetFacets(c *gin.Context) {
	response.Success(c, h.Catalog.Facets())
}

// parseProductFilter 从查询参数解析筛选条件；多值参数以逗号分隔
func parseProductFilter(c *gin.Context) (catalog.Filter, error) {
	filter := catalog.Filter{
		Brands:       queryList(c, "brands"),
		Conditions:   queryList(c, "conditions"),
		Storage:      queryList(c, "storage"),
		Colors:       queryList(c, "colors"),
		Features:     queryList(c, "features"),
		Availability: queryList(c, "availability"),
	}

	for _, raw := range queryList(c, "ratings") {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return catalog.Filter{}, err
		}
		filter.Ratings = append(filter.Ratings, rating)
	}

	priceRange, err := parsePriceRange(c.Query("price_min"), c.Query("price_max"))
	if err != nil {
		return catalog.Filter{}, err
	}
	filter.PriceRange = priceRange

	return filter, nil
}

func parsePriceRange(rawMin, rawMax string) (*catalog.PriceRange, error) {
	rawMin = strings.TrimSpace(rawMin)
	rawMax = strings.TrimSpace(rawMax)
	if rawMin == "" && rawMax == "" {
		return nil, nil
	}
	priceRange := &catalog.PriceRange{
		Min: models.NewMoneyFromInt(0),
		Max: models.NewMoneyFromInt(maxFilterPrice),
	}
	if rawMin != "" {
		value, err := decimal.NewFromString(rawMin)
		if err != nil {
			return nil, err
		}
		priceRange.Min = models.NewMoneyFromDecimal(value)
	}
	if rawMax != "" {
		value, err := decimal.NewFromString(rawMax)
		if err != nil {
			return nil, err
		}
		priceRange.Max = models.NewMoneyFromDecimal(value)
	}
	return priceRange, nil
}

// maxFilterPrice 未给出上限时的默认封顶价
const maxFilterPrice = 2000

func queryList(c *gin.Context, key string) []string {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
