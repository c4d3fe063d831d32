package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/obedtech/catalog-api/internal/config"
)

func TestTokenBucketBlocksWhenEmpty(t *testing.T) {
	_, rdb := newRedis(t)
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		WriteCapacity:  1,
		RefillTokens:   1,
		RefillInterval: time.Hour,
		TTL:            time.Hour,
		KeyStrategy:    "ip_route",
		Prefix:         "test:rl",
	}

	e := echo.New()
	e.Use(NewTokenBucket(cfg, rdb))
	e.GET("/api/movies", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.POST("/api/add", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/api/movies").Code)
	rec := do(e, http.MethodGet, "/api/movies")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	blocked := do(e, http.MethodGet, "/api/movies")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))

	// Writes use their own bucket.
	assert.Equal(t, http.StatusOK, do(e, http.MethodPost, "/api/add").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(e, http.MethodPost, "/api/add").Code)
}

func TestTokenBucketFailsOpen(t *testing.T) {
	// Nothing listens on port 1, so every script call errors.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	e := echo.New()
	e.Use(NewTokenBucket(config.RateLimitConfig{Enabled: true, Capacity: 1, WriteCapacity: 1, RefillTokens: 1, RefillInterval: time.Second, TTL: time.Minute}, rdb))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/").Code)
	}
}
