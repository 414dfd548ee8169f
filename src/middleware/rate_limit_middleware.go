package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"sos-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Counter interface {
	// Incr increments key and returns the new value, setting ttl when the key is new.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type redisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) Counter {
	return &redisCounter{client: client}
}

func (rc *redisCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := rc.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimit allows limit requests per acting user and route within each window. Counter
// failures let the request through.
func RateLimit(counter Counter, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 {
			c.Next()
			return
		}

		windowStart := time.Now().Truncate(window).Unix()
		key := fmt.Sprintf("ratelimit:%d:%s:%s:%d", ActingUserId(c), c.Request.Method, c.FullPath(), windowStart)

		count, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			logger.FromContext(c.Request.Context()).Error(err, "Rate limit counter unavailable")
			c.Next()
			return
		}

		if count > limit {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "Request was throttled."})
			return
		}

		c.Next()
	}
}
