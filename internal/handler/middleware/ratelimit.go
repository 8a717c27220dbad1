package middleware

import (
	"net/http"

	"festserve/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ScanRateLimit throttles scan-event ingestion with a shared token bucket.
// Scanner devices retry on 429, so shedding load here is safe.
func ScanRateLimit(cfg config.ScanConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
