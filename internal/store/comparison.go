package store

import (
	"encoding/json"

	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/models"
)

// Comparison 对比栏（会话级，至多 4 件，按 ID 去重）
// 仅驻留内存，不写入设备快照表。
type Comparison struct {
	products []models.Product
	limit    int
}

// NewComparison 创建空对比栏
func NewComparison() *Comparison {
	return &Comparison{limit: constants.MaxComparisonMembers}
}

// Products 返回对比中的商品（副本）
func (c *Comparison) Products() []models.Product {
	products := make([]models.Product, len(c.products))
	copy(products, c.products)
	return products
}

// Add 加入对比；已存在或已满时拒绝并返回 false
// 上限在此兜底，满员时禁用入口属于展示层的职责。
func (c *Comparison) Add(product models.Product) bool {
	if c.IsInComparison(product.ID) {
		return false
	}
	if len(c.products) >= c.limit {
		return false
	}
	c.products = append(c.products, product)
	return true
}

// Remove 移出对比（幂等）
func (c *Comparison) Remove(id string) {
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return
		}
	}
}

// Clear 清空对比栏
func (c *Comparison) Clear() {
	c.products = nil
}

// IsInComparison 判断商品是否在对比中
func (c *Comparison) IsInComparison(id string) bool {
	for _, p := range c.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Len 对比中商品数量
func (c *Comparison) Len() int {
	return len(c.products)
}

// MarshalState 序列化会话状态（Redis 镜像用，无版本封皮）
func (c *Comparison) MarshalState() ([]byte, error) {
	products := c.products
	if products == nil {
		products = []models.Product{}
	}
	return json.Marshal(products)
}

// RestoreComparison 从会话状态恢复对比栏
func RestoreComparison(raw []byte) (*Comparison, error) {
	c := NewComparison()
	if len(raw) == 0 {
		return c, nil
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, err
	}
	for _, p := range products {
		if len(c.products) >= c.limit {
			break
		}
		if p.ID == "" || c.IsInComparison(p.ID) {
			continue
		}
		c.products = append(c.products, p)
	}
	return c, nil
}
