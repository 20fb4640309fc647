package constants

// 快照文档名称常量（每个 Store 对应一份持久化文档）
const (
	StoreCart                = "cart"
	StoreWishlist            = "wishlist"
	StoreWishlistCollections = "wishlist-collections"
	StoreRecentlyViewed      = "recently-viewed"
)

// 成色等级常量
const (
	ConditionExcellent = "Excellent"
	ConditionVeryGood  = "Very Good"
	ConditionGood      = "Good"
	ConditionFair      = "Fair"
)

// 排序方式常量
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
)

// 库存状态常量（faceted 筛选用）
const (
	AvailabilityInStock    = "in-stock"
	AvailabilityOutOfStock = "out-of-stock"
)

// 集合容量上限
const (
	MaxRecentlyViewed    = 20
	MaxComparisonMembers = 4
)

// 内置心愿单收藏夹 ID
const (
	CollectionFavorites = "favorites"
	CollectionBudget    = "budget"
)

// 收藏夹颜色面板
var CollectionColors = []string{
	"red",
	"blue",
	"green",
	"purple",
	"yellow",
	"pink",
	"indigo",
	"gray",
}

// 异步任务类型常量
const (
	TaskDeviceSnapshotPrune = "device:snapshot_prune"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 设备标识常量
const (
	DeviceIDHeader     = "X-Device-ID"
	DeviceIDCookie     = "rephone_device"
	DeviceIDContextKey = "device_id"
)
