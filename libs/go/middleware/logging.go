package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mergepost/mergepost-api/libs/go/logger"
	"go.uber.org/zap"
)

// RequestLoggingMiddleware provides basic request logging for production
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		// Process request
		c.Next()

		// Calculate request duration
		duration := time.Since(startTime)

		// Get correlation ID
		correlationID := GetCorrelationID(c)

		// Log basic request info (only if logger is initialized)
		if logger.Log != nil {
			logger.Log.Info("Request completed",
				zap.String("correlation_id", correlationID),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", c.Writer.Status()),
				zap.Duration("duration", duration),
				zap.String("client_ip", c.ClientIP()),
				zap.Int("body_size", c.Writer.Size()),
			)
		}
	}
}
