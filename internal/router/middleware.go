package router

import (
	"strconv"
	"strings"
	"time"

	"github.com/rephone-next/internal/config"
	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/logger"
	"github.com/rephone-next/internal/queue"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Cache-Control",
			"X-Requested-With",
			constants.DeviceIDHeader,
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// DeviceMiddleware 设备标识中间件
// 优先取请求头，其次取 Cookie；都没有时签发新标识并种入 Cookie。
// 新设备首次出现时挂一个延迟的快照清理任务，由 worker 判断闲置后回收。
func DeviceMiddleware(cfg config.SessionConfig, queueClient *queue.Client) gin.HandlerFunc {
	maxAgeDays := cfg.CookieMaxAgeDays
	if maxAgeDays <= 0 {
		maxAgeDays = 365
	}
	cookieMaxAge := maxAgeDays * 24 * 3600
	retention := time.Duration(cfg.SnapshotRetentionH) * time.Hour

	return func(c *gin.Context) {
		deviceID := strings.TrimSpace(c.GetHeader(constants.DeviceIDHeader))
		if deviceID == "" {
			if cookieValue, err := c.Cookie(constants.DeviceIDCookie); err == nil {
				deviceID = strings.TrimSpace(cookieValue)
			}
		}
		if deviceID == "" {
			deviceID = uuid.NewString()
			c.SetCookie(constants.DeviceIDCookie, deviceID, cookieMaxAge, "/", "", false, true)
			if queueClient.Enabled() && retention > 0 {
				err := queueClient.EnqueueDeviceSnapshotPrune(
					queue.DeviceSnapshotPrunePayload{DeviceID: deviceID},
					asynq.ProcessIn(retention),
				)
				if err != nil {
					logger.Warnw("device_snapshot_prune_enqueue_failed", "device_id", deviceID, "error", err)
				}
			}
		}
		c.Set(constants.DeviceIDContextKey, deviceID)
		c.Next()
	}
}
