package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rephone-next/internal/config"
	"github.com/rephone-next/internal/constants"
)

func newDeviceTestRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(DeviceMiddleware(config.SessionConfig{CookieMaxAgeDays: 30}, nil))
	r.GET("/probe", func(c *gin.Context) {
		seen = c.GetString(constants.DeviceIDContextKey)
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestDeviceMiddlewareMintsNewID(t *testing.T) {
	r, seen := newDeviceTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	if *seen == "" {
		t.Fatal("expected device id in context")
	}
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, constants.DeviceIDCookie+"="+*seen) {
		t.Fatalf("expected device cookie, got %q", cookie)
	}
}

func TestDeviceMiddlewarePrefersHeader(t *testing.T) {
	r, seen := newDeviceTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(constants.DeviceIDHeader, "dev-from-header")
	req.AddCookie(&http.Cookie{Name: constants.DeviceIDCookie, Value: "dev-from-cookie"})
	r.ServeHTTP(w, req)

	if *seen != "dev-from-header" {
		t.Fatalf("expected header to win, got %q", *seen)
	}
	// 已识别的设备不再重新种 Cookie
	if cookie := w.Header().Get("Set-Cookie"); cookie != "" {
		t.Fatalf("expected no new cookie, got %q", cookie)
	}
}

func TestDeviceMiddlewareFallsBackToCookie(t *testing.T) {
	r, seen := newDeviceTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: constants.DeviceIDCookie, Value: "dev-from-cookie"})
	r.ServeHTTP(w, req)

	if *seen != "dev-from-cookie" {
		t.Fatalf("expected cookie device id, got %q", *seen)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/probe", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// 透传请求方提供的 ID
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Request-ID", "req-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("expected request id passthrough, got %q", got)
	}

	// 未提供时生成
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected generated request id")
	}
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(config.CORSConfig{}))
	r.GET("/probe", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/probe", nil)
	req.Header.Set("Origin", "https://example.com")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), constants.DeviceIDHeader) {
		t.Fatal("expected device id header in allowed headers")
	}
}

func TestResolveAllowedOrigin(t *testing.T) {
	if got := resolveAllowedOrigin("https://a.com", []string{"*"}, false); got != "*" {
		t.Fatalf("expected wildcard, got %q", got)
	}
	// 带凭证时回显具体来源
	if got := resolveAllowedOrigin("https://a.com", []string{"*"}, true); got != "https://a.com" {
		t.Fatalf("expected echoed origin, got %q", got)
	}
	if got := resolveAllowedOrigin("https://a.com", []string{"https://b.com"}, false); got != "" {
		t.Fatalf("expected rejection, got %q", got)
	}
	if got := resolveAllowedOrigin("https://B.com", []string{"https://b.com"}, false); got != "https://B.com" {
		t.Fatalf("expected case-insensitive match, got %q", got)
	}
}
