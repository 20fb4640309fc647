package router

import (
	"fmt"
	"strings"

	"github.com/rephone-next/internal/cache"
	"github.com/rephone-next/internal/config"
	publichandlers "github.com/rephone-next/internal/http/handlers/public"
	"github.com/rephone-next/internal/logger"
	"github.com/rephone-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "rp"
	}
	redisClient := cache.Client()
	chatRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:chat", redisPrefix),
		WindowSeconds: cfg.Chat.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Chat.RateLimit.MaxRequests,
		Message:       "too many chat messages",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(DeviceMiddleware(cfg.Session, c.QueueClient))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 商品目录
		products := apiV1.Group("/products")
		{
			products.GET("", publicHandler.GetProducts)
			products.GET("/facets", publicHandler.GetFacets)
			products.GET("/:id", publicHandler.GetProduct)
			products.GET("/:id/related", publicHandler.GetRelatedProducts)
		}

		// 购物车
		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items/:product_id", publicHandler.UpdateCartItem)
			cart.DELETE("/items/:product_id", publicHandler.DeleteCartItem)
			cart.DELETE("", publicHandler.ClearCart)
		}

		// 心愿单与收藏夹
		wishlist := apiV1.Group("/wishlist")
		{
			wishlist.GET("", publicHandler.GetWishlist)
			wishlist.POST("/items", publicHandler.AddWishlistItem)
			wishlist.DELETE("/items/:product_id", publicHandler.DeleteWishlistItem)
			wishlist.DELETE("", publicHandler.ClearWishlist)
			wishlist.POST("/collections", publicHandler.CreateCollection)
			wishlist.PUT("/collections/:collection_id", publicHandler.UpdateCollection)
			wishlist.DELETE("/collections/:collection_id", publicHandler.DeleteCollection)
			wishlist.GET("/collections/:collection_id/items", publicHandler.GetCollectionItems)
			wishlist.POST("/collections/:collection_id/items", publicHandler.AddCollectionItem)
			wishlist.DELETE("/collections/:collection_id/items/:product_id", publicHandler.DeleteCollectionItem)
		}

		// 最近浏览
		recentlyViewed := apiV1.Group("/recently-viewed")
		{
			recentlyViewed.GET("", publicHandler.GetRecentlyViewed)
			recentlyViewed.POST("", publicHandler.TrackRecentlyViewed)
			recentlyViewed.DELETE("", publicHandler.ClearRecentlyViewed)
		}

		// 商品对比
		comparison := apiV1.Group("/comparison")
		{
			comparison.GET("", publicHandler.GetComparison)
			comparison.POST("/items", publicHandler.AddComparisonItem)
			comparison.DELETE("/items/:product_id", publicHandler.DeleteComparisonItem)
			comparison.DELETE("", publicHandler.ClearComparison)
		}

		// 客服聊天
		chat := apiV1.Group("/chat")
		{
			chat.GET("/bootstrap", publicHandler.GetChatBootstrap)
			chat.POST("/messages", RateLimitMiddleware(redisClient, chatRule, KeyByDevice), publicHandler.PostChatMessage)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
