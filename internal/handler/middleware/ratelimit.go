package middleware

import (
	"context"
	"net/http"

	"drop-arbiter/internal/pkg/config"
	"drop-arbiter/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware throttles public claim submissions per client IP.
type RateLimitMiddleware struct {
	store *ratelimit.Store
}

func NewRateLimitMiddleware(cfg config.Config) *RateLimitMiddleware {
	rl := cfg.RateLimit
	return &RateLimitMiddleware{
		store: ratelimit.NewStore(rl.ClaimRPS, rl.ClaimBurst, ratelimit.WithIdleTTL(rl.IdleTTL)),
	}
}

// StartJanitor evicts idle client buckets until ctx ends.
func (m *RateLimitMiddleware) StartJanitor(ctx context.Context) {
	m.store.StartJanitor(ctx)
}

func (m *RateLimitMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.store.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}
		c.Next()
	}
}
