package service

import (
	"sync"

	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/logger"
	"github.com/rephone-next/internal/repository"
	"github.com/rephone-next/internal/store"
)

// CreateCollectionInput 新建收藏夹输入
type CreateCollectionInput struct {
	Name        string
	Description string
	Color       string
	Icon        string
}

// WishlistService 心愿单服务（按设备维度管理条目与收藏夹）
type WishlistService struct {
	catalog   *catalog.Catalog
	snapshots repository.SnapshotRepository

	mu        sync.Mutex
	wishlists map[string]*store.Wishlist
}

// NewWishlistService 创建心愿单服务
func NewWishlistService(cat *catalog.Catalog, snapshots repository.SnapshotRepository) *WishlistService {
	return &WishlistService{
		catalog:   cat,
		snapshots: snapshots,
		wishlists: make(map[string]*store.Wishlist),
	}
}

// Items 获取设备心愿单条目
func (s *WishlistService) Items(deviceID string) ([]store.WishlistItem, error) {
	if deviceID == "" {
		return nil, ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist(deviceID).Items(), nil
}

// Collections 获取设备收藏夹列表
func (s *WishlistService) Collections(deviceID string) ([]store.WishlistCollection, error) {
	if deviceID == "" {
		return nil, ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist(deviceID).Collections(), nil
}

// AddItem 收藏商品；重复收藏保持首次写入的快照
func (s *WishlistService) AddItem(deviceID, productID string, collectionIDs []string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wishlist := s.wishlist(deviceID)
	wishlist.Add(store.SnapshotOf(product), collectionIDs)
	return s.persist(deviceID, wishlist)
}

// RemoveItem 取消收藏（幂等）
func (s *WishlistService) RemoveItem(deviceID, productID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wishlist := s.wishlist(deviceID)
	wishlist.Remove(productID)
	return s.persist(deviceID, wishlist)
}

// Clear 清空条目（收藏夹保留）
func (s *WishlistService) Clear(deviceID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wishlist := s.wishlist(deviceID)
	wishlist.Clear()
	return s.persist(deviceID, wishlist)
}

// IsInWishlist 判断商品是否已收藏
func (s *WishlistService) IsInWishlist(deviceID, productID string) (bool, error) {
	if deviceID == "" {
		return false, ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist(deviceID).IsInWishlist(productID), nil
}

// CreateCollection 新建收藏夹
func (s *WishlistService) CreateCollection(deviceID string, input CreateCollectionInput) (*store.WishlistCollection, error) {
	if deviceID == "" {
		return nil, ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wishlist := s.wishlist(deviceID)
	id, err := wishlist.CreateCollection(input.Name, input.Description, input.Color, input.Icon)
	if err != nil {
		return nil, err
	}
	if err := s.persist(deviceID, wishlist); err != nil {
		return nil, err
	}
	collection, err := wishlist.CollectionByID(id)
	if err != nil {
		return nil, err
	}
	return collection, nil
}

// UpdateCollection 合并收藏夹部分字段
func (s *WishlistService) UpdateCollection(deviceID, collectionID string, update store.CollectionUpdate) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wishlist := s.wishlist(deviceID)
	if err := wishlist.UpdateCollection(collectionID, update); err != nil {
		return err
	}
	return s.persist(deviceID, wishlist)
}

// DeleteCollection 删除收藏夹并级联清理条目引用
func (s *WishlistService) DeleteCollection(deviceID, collectionID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wishlist := s.wishlist(deviceID)
	if err := wishlist.DeleteCollection(collectionID); err != nil {
		return err
	}
	return s.persist(deviceID, wishlist)
}

// AddItemToCollection 条目加入收藏夹（幂等）
func (s *WishlistService) AddItemToCollection(deviceID, itemID, collectionID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wishlist := s.wishlist(deviceID)
	if err := wishlist.AddItemToCollection(itemID, collectionID); err != nil {
		return err
	}
	return s.persist(deviceID, wishlist)
}

// RemoveItemFromCollection 条目移出收藏夹（幂等）
func (s *WishlistService) RemoveItemFromCollection(deviceID, itemID, collectionID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wishlist := s.wishlist(deviceID)
	wishlist.RemoveItemFromCollection(itemID, collectionID)
	return s.persist(deviceID, wishlist)
}

// ItemsByCollection 按收藏夹筛选条目
func (s *WishlistService) ItemsByCollection(deviceID, collectionID string) ([]store.WishlistItem, error) {
	if deviceID == "" {
		return nil, ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist(deviceID).ItemsByCollection(collectionID), nil
}

// CollectionByID 按 ID 获取收藏夹
func (s *WishlistService) CollectionByID(deviceID, collectionID string) (*store.WishlistCollection, error) {
	if deviceID == "" {
		return nil, ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist(deviceID).CollectionByID(collectionID)
}

// Reset 丢弃设备的内存状态与持久化快照
func (s *WishlistService) Reset(deviceID string) error {
	if deviceID == "" {
		return ErrDeviceIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlists, deviceID)
	if err := s.snapshots.Delete(deviceID, constants.StoreWishlist); err != nil {
		return err
	}
	return s.snapshots.Delete(deviceID, constants.StoreWishlistCollections)
}

// wishlist 获取设备心愿单，首次访问时从两份快照恢复
func (s *WishlistService) wishlist(deviceID string) *store.Wishlist {
	if wishlist, ok := s.wishlists[deviceID]; ok {
		return wishlist
	}
	wishlist := store.NewWishlist()
	s.restore(deviceID, constants.StoreWishlistCollections, wishlist.RestoreCollections)
	s.restore(deviceID, constants.StoreWishlist, wishlist.RestoreItems)
	s.wishlists[deviceID] = wishlist
	return wishlist
}

// restore 读取并恢复单份文档；失败只记日志并保持默认状态
func (s *WishlistService) restore(deviceID, storeName string, apply func([]byte) error) {
	snapshot, err := s.snapshots.Get(deviceID, storeName)
	if err != nil {
		logger.Warnw("wishlist_snapshot_load_failed", "device_id", deviceID, "store", storeName, "error", err)
		return
	}
	if snapshot == nil {
		return
	}
	if err := apply(snapshot.Payload); err != nil {
		logger.Warnw("wishlist_snapshot_reset", "device_id", deviceID, "store", storeName, "error", err)
	}
}

// persist 条目与收藏夹两份文档一并写回（派生计数随条目一起变化）
func (s *WishlistService) persist(deviceID string, wishlist *store.Wishlist) error {
	items, err := wishlist.MarshalItemsSnapshot()
	if err != nil {
		return err
	}
	if err := s.snapshots.Upsert(deviceID, constants.StoreWishlist, store.SnapshotVersion, items); err != nil {
		return err
	}
	collections, err := wishlist.MarshalCollectionsSnapshot()
	if err != nil {
		return err
	}
	return s.snapshots.Upsert(deviceID, constants.StoreWishlistCollections, store.SnapshotVersion, collections)
}
