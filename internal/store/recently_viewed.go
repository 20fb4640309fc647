package store

import (
	"time"

	"github.com/rephone-next/internal/constants"
)

// RecentlyViewedEntry 最近浏览条目
type RecentlyViewedEntry struct {
	ProductSnapshot
	ViewedAt time.Time `json:"viewed_at"`
}

// RecentlyViewed 最近浏览记录（最新在前，容量 20）
type RecentlyViewed struct {
	entries []RecentlyViewedEntry
	limit   int
}

// NewRecentlyViewed 创建空浏览记录
func NewRecentlyViewed() *RecentlyViewed {
	return &RecentlyViewed{limit: constants.MaxRecentlyViewed}
}

// Entries 返回全部条目（副本，最新在前）
func (r *RecentlyViewed) Entries() []RecentlyViewedEntry {
	entries := make([]RecentlyViewedEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Add 记录一次浏览
// 同 ID 旧条目先移除再置顶（重复浏览上浮而非产生重复），超出容量从尾部淘汰。
func (r *RecentlyViewed) Add(snapshot ProductSnapshot) {
	filtered := make([]RecentlyViewedEntry, 0, len(r.entries)+1)
	filtered = append(filtered, RecentlyViewedEntry{
		ProductSnapshot: snapshot,
		ViewedAt:        time.Now(),
	})
	for _, entry := range r.entries {
		if entry.ID == snapshot.ID {
			continue
		}
		filtered = append(filtered, entry)
	}
	if len(filtered) > r.limit {
		filtered = filtered[:r.limit]
	}
	r.entries = filtered
}

// Clear 清空浏览记录
func (r *RecentlyViewed) Clear() {
	r.entries = nil
}

// TotalItems 条目总数
func (r *RecentlyViewed) TotalItems() int {
	return len(r.entries)
}

// MarshalSnapshot 序列化为持久化文档
func (r *RecentlyViewed) MarshalSnapshot() ([]byte, error) {
	entries := r.entries
	if entries == nil {
		entries = []RecentlyViewedEntry{}
	}
	return encodeSnapshot(entries)
}

// RestoreRecentlyViewed 从持久化文档恢复浏览记录
func RestoreRecentlyViewed(raw []byte) (*RecentlyViewed, error) {
	var entries []RecentlyViewedEntry
	if err := decodeSnapshot(raw, &entries); err != nil {
		return nil, err
	}
	r := NewRecentlyViewed()
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.ID == "" || seen[entry.ID] {
			continue
		}
		seen[entry.ID] = true
		r.entries = append(r.entries, entry)
		if len(r.entries) >= r.limit {
			break
		}
	}
	return r, nil
}
