package store

import (
	"github.com/shopspring/decimal"

	"github.com/rephone-next/internal/models"
)

// CartLineItem 购物车行项
// 每个商品 ID 至多一行，数量始终 ≥ 1。
type CartLineItem struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    models.Money `json:"price"`
	Image    string       `json:"image"`
	Quantity int          `json:"quantity"`
}

// Cart 购物车状态容器
type Cart struct {
	items []CartLineItem
}

// NewCart 创建空购物车
func NewCart() *Cart {
	return &Cart{}
}

// Items 返回全部行项（副本）
func (c *Cart) Items() []CartLineItem {
	items := make([]CartLineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Add 添加商品；已有同 ID 行则累加数量
func (c *Cart) Add(item CartLineItem, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	item.Quantity = quantity
	c.items = append(c.items, item)
}

// UpdateQuantity 设置行项数量；非正数时整行移除，ID 不存在时无操作
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove 移除行项（幂等）
func (c *Cart) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear 清空购物车
func (c *Cart) Clear() {
	c.items = nil
}

// TotalPrice 合计金额 Σ(price×quantity)
func (c *Cart) TotalPrice() models.Money {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}

// TotalItems 合计件数 Σ(quantity)，用于角标计数
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Len 行项数量
func (c *Cart) Len() int {
	return len(c.items)
}

// MarshalSnapshot 序列化为持久化文档
func (c *Cart) MarshalSnapshot() ([]byte, error) {
	items := c.items
	if items == nil {
		items = []CartLineItem{}
	}
	return encodeSnapshot(items)
}

// RestoreCart 从持久化文档恢复购物车
func RestoreCart(raw []byte) (*Cart, error) {
	var items []CartLineItem
	if err := decodeSnapshot(raw, &items); err != nil {
		return nil, err
	}
	cart := NewCart()
	for _, item := range items {
		if item.ID == "" || item.Quantity < 1 {
			continue
		}
		cart.items = append(cart.items, item)
	}
	return cart, nil
}
