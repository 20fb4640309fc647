package service

import (
	"sync"

	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/logger"
	"github.com/rephone-next/internal/models"
	"github.com/rephone-next/internal/repository"
	"github.com/rephone-next/internal/store"
)

// CartTotals 购物车合计
type CartTotals struct {
	TotalPrice models.Money `json:"total_price"`
	TotalItems int          `json:"total_items"`
}

// CartService 购物车服务（按设备维度管理状态）
// 每次变更后同步将整份行项集合写回设备快照。
type CartService struct {
	catalog   *catalog.Catalog
	snapshots repository.SnapshotRepository

	mu    sync.Mutex
	carts map[string]*store.Cart
}

// NewCartService 创建购物车服务
func NewCartService(cat *catalog.Catalog, snapshots repository.SnapshotRepository) *CartService {
	return &CartService{
		catalog:   cat,
		snapshots: snapshots,
		carts:     make(map[string]*store.Cart),
	}
}

// List 获取设备购物车行项
func (s *CartService) List(deviceID string) ([]store.CartLineItem, error) {
	if deviceID == "" {
		return nil, ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(deviceID).Items(), nil
}

// Totals 获取设备购物车合计
func (s *CartService) Totals(deviceID string) (CartTotals, error) {
	if deviceID == "" {
		return CartTotals{}, ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(deviceID)
	return CartTotals{
		TotalPrice: cart.TotalPrice(),
		TotalItems: cart.TotalItems(),
	}, nil
}

// AddItem 加入购物车；同商品行累加数量（quantity≤0 视为 1）
func (s *CartService) AddItem(deviceID, productID string, quantity int) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(deviceID)
	cart.Add(store.CartLineItem{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.PriceAmount,
		Image: product.MainImage(),
	}, quantity)
	return s.persist(deviceID, cart)
}

// UpdateQuantity 设置行项数量；非正数等价于移除
func (s *CartService) UpdateQuantity(deviceID, productID string, quantity int) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(deviceID)
	cart.UpdateQuantity(productID, quantity)
	return s.persist(deviceID, cart)
}

// RemoveItem 移除行项（幂等）
func (s *CartService) RemoveItem(deviceID, productID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(deviceID)
	cart.Remove(productID)
	return s.persist(deviceID, cart)
}

// Clear 清空购物车
func (s *CartService) Clear(deviceID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(deviceID)
	cart.Clear()
	return s.persist(deviceID, cart)
}

// Reset 丢弃设备的内存状态与持久化快照（测试隔离/设备清理用）
func (s *CartService) Reset(deviceID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, deviceID)
	return s.snapshots.Delete(deviceID, constants.StoreCart)
}

// cart 获取设备购物车，首次访问时从快照恢复
func (s *CartService) cart(deviceID string) *store.Cart {
	if cart, ok := s.carts[deviceID]; ok {
		return cart
	}
	cart := s.loadCart(deviceID)
	s.carts[deviceID] = cart
	return cart
}

func (s *CartService) loadCart(deviceID string) *store.Cart {
	snapshot, err := s.snapshots.Get(deviceID, constants.StoreCart)
	if err != nil {
		logger.Warnw("cart_snapshot_load_failed", "device_id", deviceID, "error", err)
		return store.NewCart()
	}
	if snapshot == nil {
		return store.NewCart()
	}
	cart, err := store.RestoreCart(snapshot.Payload)
	if err != nil {
		// 解析失败只降级为空购物车，不向用户暴露
		logger.Warnw("cart_snapshot_reset", "device_id", deviceID, "error", err)
		return store.NewCart()
	}
	return cart
}

func (s *CartService) persist(deviceID string, cart *store.Cart) error {
	payload, err := cart.MarshalSnapshot()
	if err != nil {
		return err
	}
	return s.snapshots.Upsert(deviceID, constants.StoreCart, store.SnapshotVersion, payload)
}
