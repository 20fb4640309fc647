package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rephone-next/internal/constants"
)

var (
	// ErrCollectionNotFound 收藏夹不存在
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrCollectionProtected 内置收藏夹不可删除
	ErrCollectionProtected = errors.New("collection is protected")
	// ErrCollectionColorInvalid 颜色不在固定面板内
	ErrCollectionColorInvalid = errors.New("collection color invalid")
)

// WishlistItem 心愿单条目
type WishlistItem struct {
	ProductSnapshot
	AddedAt       time.Time `json:"added_at"`
	CollectionIDs []string  `json:"collection_ids"`
}

// WishlistCollection 心愿单收藏夹
// ItemCount 为派生值，每次条目集合变化后重新计算，不作权威存储。
type WishlistCollection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	ItemCount   int       `json:"item_count"`
	Deletable   bool      `json:"deletable"`
}

// CollectionUpdate 收藏夹部分更新字段
type CollectionUpdate struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
}

// DefaultCollections 内置收藏夹（不可删除）
func DefaultCollections() []WishlistCollection {
	now := time.Now()
	return []WishlistCollection{
		{
			ID:          constants.CollectionFavorites,
			Name:        "Favorites",
			Description: "My favorite phones",
			Color:       "red",
			Icon:        "❤️",
			CreatedAt:   now,
		},
		{
			ID:          constants.CollectionBudget,
			Name:        "Budget Picks",
			Description: "Great phones under budget",
			Color:       "green",
			Icon:        "💰",
			CreatedAt:   now,
		},
	}
}

// Wishlist 心愿单状态容器（条目 + 收藏夹）
type Wishlist struct {
	items       []WishlistItem
	collections []WishlistCollection
}

// NewWishlist 创建带内置收藏夹的空心愿单
func NewWishlist() *Wishlist {
	return &Wishlist{collections: DefaultCollections()}
}

// Items 返回全部条目（副本）
func (w *Wishlist) Items() []WishlistItem {
	items := make([]WishlistItem, len(w.items))
	copy(items, w.items)
	return items
}

// Collections 返回全部收藏夹（副本）
func (w *Wishlist) Collections() []WishlistCollection {
	collections := make([]WishlistCollection, len(w.collections))
	copy(collections, w.collections)
	return collections
}

// Add 添加条目；同 ID 已存在时保持首次写入的快照不变
func (w *Wishlist) Add(snapshot ProductSnapshot, collectionIDs []string) {
	if w.isInWishlist(snapshot.ID) {
		return
	}
	w.items = append(w.items, WishlistItem{
		ProductSnapshot: snapshot,
		AddedAt:         time.Now(),
		CollectionIDs:   w.knownCollectionIDs(collectionIDs),
	})
	w.recomputeItemCounts()
}

// Remove 移除条目（幂等）
func (w *Wishlist) Remove(id string) {
	for i := range w.items {
		if w.items[i].ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			w.recomputeItemCounts()
			return
		}
	}
}

// Clear 清空条目（收藏夹本身保留）
func (w *Wishlist) Clear() {
	w.items = nil
	w.recomputeItemCounts()
}

// IsInWishlist 判断商品是否已收藏
func (w *Wishlist) IsInWishlist(id string) bool {
	return w.isInWishlist(id)
}

// TotalItems 条目总数
func (w *Wishlist) TotalItems() int {
	return len(w.items)
}

// CreateCollection 新建收藏夹，返回生成的 ID
func (w *Wishlist) CreateCollection(name, description, color, icon string) (string, error) {
	if !validCollectionColor(color) {
		return "", ErrCollectionColorInvalid
	}
	id := newCollectionID()
	w.collections = append(w.collections, WishlistCollection{
		ID:          id,
		Name:        name,
		Description: description,
		Color:       color,
		Icon:        icon,
		CreatedAt:   time.Now(),
		Deletable:   true,
	})
	return id, nil
}

// UpdateCollection 合并部分字段；ID 不存在时无操作
func (w *Wishlist) UpdateCollection(id string, update CollectionUpdate) error {
	for i := range w.collections {
		if w.collections[i].ID != id {
			continue
		}
		if update.Color != nil && !validCollectionColor(*update.Color) {
			return ErrCollectionColorInvalid
		}
		if update.Name != nil {
			w.collections[i].Name = *update.Name
		}
		if update.Description != nil {
			w.collections[i].Description = *update.Description
		}
		if update.Color != nil {
			w.collections[i].Color = *update.Color
		}
		if update.Icon != nil {
			w.collections[i].Icon = *update.Icon
		}
		return nil
	}
	return nil
}

// DeleteCollection 删除收藏夹，并级联移除所有条目中的引用
// 内置收藏夹（deletable=false）拒绝删除。
func (w *Wishlist) DeleteCollection(id string) error {
	index := -1
	for i := range w.collections {
		if w.collections[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return ErrCollectionNotFound
	}
	if !w.collections[index].Deletable {
		return ErrCollectionProtected
	}
	for i := range w.items {
		w.items[i].CollectionIDs = removeString(w.items[i].CollectionIDs, id)
	}
	w.collections = append(w.collections[:index], w.collections[index+1:]...)
	w.recomputeItemCounts()
	return nil
}

// AddItemToCollection 将条目加入收藏夹（幂等）
func (w *Wishlist) AddItemToCollection(itemID, collectionID string) error {
	if !w.collectionExists(collectionID) {
		return ErrCollectionNotFound
	}
	for i := range w.items {
		if w.items[i].ID != itemID {
			continue
		}
		if containsString(w.items[i].CollectionIDs, collectionID) {
			return nil
		}
		w.items[i].CollectionIDs = append(w.items[i].CollectionIDs, collectionID)
		w.recomputeItemCounts()
		return nil
	}
	return nil
}

// RemoveItemFromCollection 将条目移出收藏夹（幂等）
func (w *Wishlist) RemoveItemFromCollection(itemID, collectionID string) {
	for i := range w.items {
		if w.items[i].ID != itemID {
			continue
		}
		w.items[i].CollectionIDs = removeString(w.items[i].CollectionIDs, collectionID)
		w.recomputeItemCounts()
		return
	}
}

// ItemsByCollection 按收藏夹成员关系筛选条目
func (w *Wishlist) ItemsByCollection(collectionID string) []WishlistItem {
	items := make([]WishlistItem, 0)
	for _, item := range w.items {
		if containsString(item.CollectionIDs, collectionID) {
			items = append(items, item)
		}
	}
	return items
}

// CollectionByID 按 ID 查找收藏夹
func (w *Wishlist) CollectionByID(id string) (*WishlistCollection, error) {
	for i := range w.collections {
		if w.collections[i].ID == id {
			collection := w.collections[i]
			return &collection, nil
		}
	}
	return nil, ErrCollectionNotFound
}

// MarshalItemsSnapshot 序列化条目文档
func (w *Wishlist) MarshalItemsSnapshot() ([]byte, error) {
	items := w.items
	if items == nil {
		items = []WishlistItem{}
	}
	return encodeSnapshot(items)
}

// MarshalCollectionsSnapshot 序列化收藏夹文档
func (w *Wishlist) MarshalCollectionsSnapshot() ([]byte, error) {
	return encodeSnapshot(w.collections)
}

// RestoreItems 从条目文档恢复；恢复后重算派生计数
func (w *Wishlist) RestoreItems(raw []byte) error {
	var items []WishlistItem
	if err := decodeSnapshot(raw, &items); err != nil {
		return err
	}
	w.items = nil
	for _, item := range items {
		if item.ID == "" || w.isInWishlist(item.ID) {
			continue
		}
		if item.CollectionIDs == nil {
			item.CollectionIDs = []string{}
		}
		w.items = append(w.items, item)
	}
	w.recomputeItemCounts()
	return nil
}

// RestoreCollections 从收藏夹文档恢复；内置收藏夹缺失时补齐
func (w *Wishlist) RestoreCollections(raw []byte) error {
	var collections []WishlistCollection
	if err := decodeSnapshot(raw, &collections); err != nil {
		return err
	}
	if len(collections) == 0 {
		return nil
	}
	w.collections = collections
	for _, builtin := range DefaultCollections() {
		if !w.collectionExists(builtin.ID) {
			w.collections = append(w.collections, builtin)
		}
	}
	// 历史数据没有 deletable 标记，按内置 ID 补齐保护位
	for i := range w.collections {
		id := w.collections[i].ID
		w.collections[i].Deletable = id != constants.CollectionFavorites && id != constants.CollectionBudget
	}
	w.recomputeItemCounts()
	return nil
}

// recomputeItemCounts 重算每个收藏夹的派生条目计数
func (w *Wishlist) recomputeItemCounts() {
	for i := range w.collections {
		count := 0
		for _, item := range w.items {
			if containsString(item.CollectionIDs, w.collections[i].ID) {
				count++
			}
		}
		w.collections[i].ItemCount = count
	}
}

func (w *Wishlist) isInWishlist(id string) bool {
	for _, item := range w.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (w *Wishlist) collectionExists(id string) bool {
	for _, collection := range w.collections {
		if collection.ID == id {
			return true
		}
	}
	return false
}

// knownCollectionIDs 过滤掉不存在的收藏夹引用
func (w *Wishlist) knownCollectionIDs(ids []string) []string {
	known := make([]string, 0, len(ids))
	for _, id := range ids {
		if w.collectionExists(id) && !containsString(known, id) {
			known = append(known, id)
		}
	}
	return known
}

// newCollectionID 生成时间戳 + 随机段的收藏夹 ID
func newCollectionID() string {
	token := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("collection_%d_%s", time.Now().UnixMilli(), token)
}

func validCollectionColor(color string) bool {
	return containsString(constants.CollectionColors, color)
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func removeString(values []string, target string) []string {
	result := values[:0]
	for _, v := range values {
		if v != target {
			result = append(result, v)
		}
	}
	return result
}
