package models

import (
	"time"
)

// Product 商品表（静态种子数据，运行期只读）
type Product struct {
	ID            string      `gorm:"primarykey;type:varchar(64)" json:"id"`             // 商品 ID
	Name          string      `gorm:"type:varchar(200);not null" json:"name"`            // 商品名称
	Brand         string      `gorm:"type:varchar(100);not null;index" json:"brand"`     // 品牌
	PriceAmount   Money       `gorm:"type:decimal(20,2);not null" json:"price"`          // 售价
	OriginalPrice Money       `gorm:"type:decimal(20,2);not null" json:"original_price"` // 原价
	Rating        float64     `gorm:"not null;default:0" json:"rating"`                  // 评分
	Reviews       int         `gorm:"not null;default:0" json:"reviews"`                 // 评价数
	Images        StringArray `gorm:"type:json" json:"images"`                           // 图片数组
	Condition     string      `gorm:"type:varchar(20);not null;index" json:"condition"`  // 成色等级
	Storage       string      `gorm:"type:varchar(20)" json:"storage"`                   // 存储容量
	Color         string      `gorm:"type:varchar(50)" json:"color"`                     // 颜色
	Category      string      `gorm:"type:varchar(50);index" json:"category"`            // 分类
	Description   string      `gorm:"type:text" json:"description"`                      // 商品描述
	SpecsJSON     JSON        `gorm:"type:json" json:"specifications"`                   // 规格（display/performance/camera/battery/connectivity/physical）
	Warranty      string      `gorm:"type:varchar(50)" json:"warranty"`                  // 质保期
	InStock       bool        `gorm:"default:true;index" json:"in_stock"`                // 是否有货
	StockCount    int         `gorm:"not null;default:0" json:"stock_count"`             // 库存数量
	Features      StringArray `gorm:"type:json" json:"features"`                         // 卖点列表
	SortOrder     int         `gorm:"default:0;index" json:"sort_order"`                 // 排序权重
	CreatedAt     time.Time   `json:"created_at"`                                        // 创建时间
	UpdatedAt     time.Time   `json:"updated_at"`                                        // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// MainImage 返回首图
func (p Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
