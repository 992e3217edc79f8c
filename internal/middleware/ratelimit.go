package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RateLimit throttles requests per client IP using the provided limiter.
// Exhausted clients receive a 429 with the standard envelope shape.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		logger := GetLoggerFromCtx(c.Request.Context())

		limitCtx, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			logger.Error("Rate limit check failed", slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "something went wrong",
			})
			return
		}

		if limitCtx.Reached {
			logger.Warn("Rate limit exceeded",
				slog.String("ip", ip),
				slog.Int64("limit", limitCtx.Limit),
				slog.Int64("remaining", limitCtx.Remaining))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}
