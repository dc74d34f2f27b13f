package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newsportal/helper"
	"newsportal/logging"
	"newsportal/ratelimit"
	"newsportal/telemetry"
)

// RateLimit throttles requests per route and client IP. Limiter failures
// let the request through.
func RateLimit(limiter ratelimit.Limiter, h *helper.HTTPHelper, metrics *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.FullPath()+"|"+c.ClientIP())
		if err != nil {
			logging.L().Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			metrics.RateLimited(c.Request.Context(), c.FullPath())
			h.SendErrorMessage(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		c.Next()
	}
}
