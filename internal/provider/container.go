package provider

import (
	"time"

	"github.com/rephone-next/internal/cache"
	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/config"
	"github.com/rephone-next/internal/logger"
	"github.com/rephone-next/internal/models"
	"github.com/rephone-next/internal/queue"
	"github.com/rephone-next/internal/repository"
	"github.com/rephone-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo  repository.ProductRepository
	SnapshotRepo repository.SnapshotRepository

	// 商品目录（启动时整仓加载，运行期只读）
	Catalog *catalog.Catalog

	// Services
	CartService           *service.CartService
	WishlistService       *service.WishlistService
	RecentlyViewedService *service.RecentlyViewedService
	ComparisonService     *service.ComparisonService
	ChatService           *service.ChatService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 加载商品目录
	c.initCatalog()

	// 3. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.SnapshotRepo = repository.NewSnapshotRepository(db)
}

func (c *Container) initCatalog() {
	cat, err := catalog.Load(c.ProductRepo)
	if err != nil {
		logger.Errorw("provider_load_catalog_failed", "error", err)
		panic(err)
	}
	logger.Infow("provider_catalog_loaded", "products", cat.Len())
	c.Catalog = cat
}

func (c *Container) initServices() {
	comparisonTTL := time.Duration(c.Config.Comparison.TTLMinutes) * time.Minute
	c.CartService = service.NewCartService(c.Catalog, c.SnapshotRepo)
	c.WishlistService = service.NewWishlistService(c.Catalog, c.SnapshotRepo)
	c.RecentlyViewedService = service.NewRecentlyViewedService(c.Catalog, c.SnapshotRepo)
	c.ComparisonService = service.NewComparisonService(c.Catalog, comparisonTTL)
	c.ChatService = service.NewChatService(c.Config.Chat)
}
