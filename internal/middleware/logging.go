package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"billbook/internal/logger"
	"billbook/internal/uuid"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
)

// RequestLogging returns a Gin middleware that logs each request with a
// request ID, method, path, status code, latency, and client IP using Zap.
// A well-formed X-Request-ID from the caller is reused; otherwise a
// time-ordered ID is generated.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID, ok := uuid.Normalize(c.GetHeader(requestIDHeader))
		if !ok {
			requestID = uuid.New()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		latency := time.Since(start)
		log := logger.Get()
		log.Infow("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// RequestID returns the ID assigned to the current request by RequestLogging.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
