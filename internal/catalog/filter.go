package catalog

import (
	"strings"

	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/models"
)

// PriceRange 价格闭区间
type PriceRange struct {
	Min models.Money
	Max models.Money
}

// Filter 商品筛选条件
// 除 Features（需全部命中）外，各维度内部均为「命中任一选中值」语义。
type Filter struct {
	Brands       []string
	Conditions   []string
	Storage      []string
	Colors       []string
	Features     []string
	Ratings      []float64
	Availability []string
	PriceRange   *PriceRange
}

// IsZero 判断是否未设置任何条件
func (f Filter) IsZero() bool {
	return len(f.Brands) == 0 &&
		len(f.Conditions) == 0 &&
		len(f.Storage) == 0 &&
		len(f.Colors) == 0 &&
		len(f.Features) == 0 &&
		len(f.Ratings) == 0 &&
		len(f.Availability) == 0 &&
		f.PriceRange == nil
}

// Filter 按条件筛选商品（目录顺序稳定）
func (c *Catalog) Filter(f Filter) []models.Product {
	if f.IsZero() {
		return c.List()
	}
	result := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if matchesFilter(p, f) {
			result = append(result, p)
		}
	}
	return result
}

// ByBrand 按品牌筛选（分类页用）
func (c *Catalog) ByBrand(brand string) []models.Product {
	return c.Filter(Filter{Brands: []string{brand}})
}

func matchesFilter(p models.Product, f Filter) bool {
	if len(f.Brands) > 0 && !containsFold(f.Brands, p.Brand) {
		return false
	}
	if len(f.Conditions) > 0 && !containsCondition(f.Conditions, p.Condition) {
		return false
	}
	if len(f.Storage) > 0 && !containsFold(f.Storage, p.Storage) {
		return false
	}
	if f.PriceRange != nil {
		if p.PriceAmount.LessThan(f.PriceRange.Min.Decimal) || p.PriceAmount.GreaterThan(f.PriceRange.Max.Decimal) {
			return false
		}
	}
	if len(f.Colors) > 0 && !containsColor(f.Colors, p.Color) {
		return false
	}
	if len(f.Features) > 0 {
		for _, feature := range f.Features {
			if !containsExact(p.Features, feature) {
				return false
			}
		}
	}
	if len(f.Ratings) > 0 && p.Rating < minRating(f.Ratings) {
		return false
	}
	if len(f.Availability) > 0 && !matchesAvailability(f.Availability, p.InStock) {
		return false
	}
	return true
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}

// containsCondition 成色值在筛选参数中以 kebab-case 传递（very-good）
func containsCondition(values []string, condition string) bool {
	normalized := strings.ReplaceAll(strings.ToLower(condition), " ", "-")
	for _, v := range values {
		if strings.ToLower(strings.TrimSpace(v)) == normalized {
			return true
		}
	}
	return false
}

func containsColor(values []string, color string) bool {
	lowered := strings.ToLower(color)
	for _, v := range values {
		if strings.Contains(lowered, strings.ToLower(strings.TrimSpace(v))) {
			return true
		}
	}
	return false
}

func containsExact(values models.StringArray, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func minRating(ratings []float64) float64 {
	min := ratings[0]
	for _, r := range ratings[1:] {
		if r < min {
			min = r
		}
	}
	return min
}

func matchesAvailability(values []string, inStock bool) bool {
	status := constants.AvailabilityOutOfStock
	if inStock {
		status = constants.AvailabilityInStock
	}
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), status) {
			return true
		}
	}
	return false
}
