package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// countingCache is an in-memory stand-in for the Redis counter.
type countingCache struct {
	counts  map[string]int64
	expired map[string]time.Duration
	incrErr error
}

func newCountingCache() *countingCache {
	return &countingCache{
		counts:  make(map[string]int64),
		expired: make(map[string]time.Duration),
	}
}

func (c *countingCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (c *countingCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (c *countingCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (c *countingCache) Increment(ctx context.Context, key string) (int64, error) {
	if c.incrErr != nil {
		return 0, c.incrErr
	}
	c.counts[key]++
	return c.counts[key], nil
}

func (c *countingCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	c.expired[key] = ttl
	return nil
}

func (c *countingCache) Ping(ctx context.Context) error { return nil }

func newLimitedRouter(store *countingCache, limit int64) *gin.Engine {
	r := gin.New()
	r.Use(RateLimit(store, limit, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func hit(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("allows requests under the limit", func(t *testing.T) {
		r := newLimitedRouter(newCountingCache(), 3)

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, hit(r).Code)
		}
	})

	t.Run("rejects requests over the limit", func(t *testing.T) {
		r := newLimitedRouter(newCountingCache(), 2)

		hit(r)
		hit(r)
		w := hit(r)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("first hit sets the window expiry", func(t *testing.T) {
		store := newCountingCache()
		r := newLimitedRouter(store, 10)

		hit(r)
		hit(r)

		assert.Len(t, store.expired, 1)
		for _, ttl := range store.expired {
			assert.Equal(t, time.Minute, ttl)
		}
	})

	t.Run("fails open when the store is down", func(t *testing.T) {
		store := newCountingCache()
		store.incrErr = errors.New("connection refused")
		r := newLimitedRouter(store, 1)

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, hit(r).Code)
		}
	})
}
