package service

import (
	"sync"

	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/logger"
	"github.com/rephone-next/internal/repository"
	"github.com/rephone-next/internal/store"
)

// RecentlyViewedService 最近浏览服务（按设备维度持久化记录）
type RecentlyViewedService struct {
	catalog   *catalog.Catalog
	snapshots repository.SnapshotRepository

	mu      sync.Mutex
	records map[string]*store.RecentlyViewed
}

// NewRecentlyViewedService 创建最近浏览服务
func NewRecentlyViewedService(cat *catalog.Catalog, snapshots repository.SnapshotRepository) *RecentlyViewedService {
	return &RecentlyViewedService{
		catalog:   cat,
		snapshots: snapshots,
		records:   make(map[string]*store.RecentlyViewed),
	}
}

// Entries 获取设备浏览记录（最新在前）
func (s *RecentlyViewedService) Entries(deviceID string) ([]store.RecentlyViewedEntry, error) {
	if deviceID == "" {
		return nil, ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(deviceID).Entries(), nil
}

// TotalItems 浏览记录条数
func (s *RecentlyViewedService) TotalItems(deviceID string) (int, error) {
	if deviceID == "" {
		return 0, ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(deviceID).TotalItems(), nil
}

// Track 记录一次商品浏览
func (s *RecentlyViewedService) Track(deviceID, productID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.record(deviceID)
	record.Add(store.SnapshotOf(product))
	return s.persist(deviceID, record)
}

// Clear 清空浏览记录
func (s *RecentlyViewedService) Clear(deviceID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.record(deviceID)
	record.Clear()
	return s.persist(deviceID, record)
}

// Reset 丢弃设备的内存状态与持久化快照
func (s *RecentlyViewedService) Reset(deviceID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, deviceID)
	return s.snapshots.Delete(deviceID, constants.StoreRecentlyViewed)
}

func (s *RecentlyViewedService) record(deviceID string) *store.RecentlyViewed {
	if record, ok := s.records[deviceID]; ok {
		return record
	}
	record := s.load(deviceID)
	s.records[deviceID] = record
	return record
}

func (s *RecentlyViewedService) load(deviceID string) *store.RecentlyViewed {
	snapshot, err := s.snapshots.Get(deviceID, constants.StoreRecentlyViewed)
	if err != nil {
		logger.Warnw("recently_viewed_snapshot_load_failed", "device_id", deviceID, "error", err)
		return store.NewRecentlyViewed()
	}
	if snapshot == nil {
		return store.NewRecentlyViewed()
	}
	record, err := store.RestoreRecentlyViewed(snapshot.Payload)
	if err != nil {
		logger.Warnw("recently_viewed_snapshot_reset", "device_id", deviceID, "error", err)
		return store.NewRecentlyViewed()
	}
	return record
}

func (s *RecentlyViewedService) persist(deviceID string, record *store.RecentlyViewed) error {
	payload, err := record.MarshalSnapshot()
	if err != nil {
		return err
	}
	return s.snapshots.Upsert(deviceID, constants.StoreRecentlyViewed, store.SnapshotVersion, payload)
}
