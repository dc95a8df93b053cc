package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-api/internal/platform/logger"
	"github.com/ridloal/product-api/internal/platform/metrics"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests with 429 once the shared token bucket is empty.
// A nil limiter lets everything through.
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limiter.Allow() {
			c.Next()
			return
		}
		metrics.RateLimitRejectedTotal.Inc()
		logger.Warn("RateLimit: rejected %s %s", c.Request.Method, c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "Too many requests"})
	}
}
