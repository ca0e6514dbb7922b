package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/shared/response"
	"bookcatalog-backend/pkg/cache"
	"bookcatalog-backend/pkg/logger"
)

// RateLimit is a fixed-window limiter keyed by client IP, backed by Redis
// so the window is shared across instances. Fails open when Redis is down.
func RateLimit(store cache.Cache, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := store.Increment(c.Request.Context(), key)
		if err != nil {
			logger.Error("rate limit: increment failed", err)
			c.Next()
			return
		}

		// First hit in the window owns the expiry.
		if count == 1 {
			if err := store.Expire(c.Request.Context(), key, window); err != nil {
				logger.Error("rate limit: expire failed", err)
			}
		}

		if count > limit {
			response.TooManyRequests(c, "rate limit exceeded, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
