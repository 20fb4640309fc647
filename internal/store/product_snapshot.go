package store

import (
	"github.com/rephone-next/internal/models"
)

// ProductSnapshot 商品展示字段的反规范化副本
// 心愿单、最近浏览等条目内嵌此副本，不引用目录中的活动对象。
type ProductSnapshot struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Brand         string       `json:"brand"`
	Price         models.Money `json:"price"`
	OriginalPrice models.Money `json:"original_price"`
	Rating        float64      `json:"rating"`
	Reviews       int          `json:"reviews"`
	Image         string       `json:"image"`
	Condition     string       `json:"condition"`
	Storage       string       `json:"storage"`
	Color         string       `json:"color"`
	Category      string       `json:"category,omitempty"`
}

// SnapshotOf 从目录商品生成反规范化副本
func SnapshotOf(p *models.Product) ProductSnapshot {
	return ProductSnapshot{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         p.PriceAmount,
		OriginalPrice: p.OriginalPrice,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Image:         p.MainImage(),
		Condition:     p.Condition,
		Storage:       p.Storage,
		Color:         p.Color,
		Category:      p.Category,
	}
}
