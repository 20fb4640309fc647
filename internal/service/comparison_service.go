package service

import (
	"context"
	"sync"
	"time"

	"github.com/rephone-next/internal/cache"
	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/logger"
	"github.com/rephone-next/internal/models"
	"github.com/rephone-next/internal/store"
)

const defaultComparisonTTL = 2 * time.Hour

// ComparisonService 对比栏服务
// 状态驻留内存，不写入设备快照表；启用 Redis 时保留一份带 TTL 的会话镜像。
type ComparisonService struct {
	catalog *catalog.Catalog
	ttl     time.Duration

	mu   sync.Mutex
	sets map[string]*store.Comparison
}

// NewComparisonService 创建对比栏服务
func NewComparisonService(cat *catalog.Catalog, ttl time.Duration) *ComparisonService {
	if ttl <= 0 {
		ttl = defaultComparisonTTL
	}
	return &ComparisonService{
		catalog: cat,
		ttl:     ttl,
		sets:    make(map[string]*store.Comparison),
	}
}

// List 获取对比中的商品
func (s *ComparisonService) List(ctx context.Context, deviceID string) ([]models.Product, error) {
	if deviceID == "" {
		return nil, ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(ctx, deviceID).Products(), nil
}

// Add 加入对比；满员或重复时静默拒绝（ok=false）
func (s *ComparisonService) Add(ctx context.Context, deviceID, productID string) (bool, error) {
	if deviceID == "" {
		return false, ErrDeviceIDRequired
	}
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.set(ctx, deviceID)
	added := set.Add(*product)
	if added {
		s.mirror(ctx, deviceID, set)
	}
	return added, nil
}

// Remove 移出对比（幂等）
func (s *ComparisonService) Remove(ctx context.Context, deviceID, productID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.set(ctx, deviceID)
	set.Remove(productID)
	s.mirror(ctx, deviceID, set)
	return nil
}

// Clear 清空对比栏
func (s *ComparisonService) Clear(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, deviceID)
	if err := cache.DelComparisonState(ctx, deviceID); err != nil {
		logger.Warnw("comparison_state_del_failed", "device_id", deviceID, "error", err)
	}
	return nil
}

// IsInComparison 判断商品是否在对比中
func (s *ComparisonService) IsInComparison(ctx context.Context, deviceID, productID string) (bool, error) {
	if deviceID == "" {
		return false, ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(ctx, deviceID).IsInComparison(productID), nil
}

// set 获取设备对比栏；内存未命中时尝试 Redis 镜像
func (s *ComparisonService) set(ctx context.Context, deviceID string) *store.Comparison {
	if set, ok := s.sets[deviceID]; ok {
		return set
	}
	set := s.restore(ctx, deviceID)
	s.sets[deviceID] = set
	return set
}

func (s *ComparisonService) restore(ctx context.Context, deviceID string) *store.Comparison {
	payload, hit, err := cache.GetComparisonState(ctx, deviceID)
	if err != nil {
		logger.Warnw("comparison_state_load_failed", "device_id", deviceID, "error", err)
		return store.NewComparison()
	}
	if !hit {
		return store.NewComparison()
	}
	set, err := store.RestoreComparison(payload)
	if err != nil {
		logger.Warnw("comparison_state_reset", "device_id", deviceID, "error", err)
		return store.NewComparison()
	}
	return set
}

// mirror 将对比栏写入 Redis 镜像（尽力而为）
func (s *ComparisonService) mirror(ctx context.Context, deviceID string, set *store.Comparison) {
	payload, err := set.MarshalState()
	if err != nil {
		logger.Warnw("comparison_state_marshal_failed", "device_id", deviceID, "error", err)
		return
	}
	if err := cache.SetComparisonState(ctx, deviceID, payload, s.ttl); err != nil {
		logger.Warnw("comparison_state_mirror_failed", "device_id", deviceID, "error", err)
	}
}
