package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "billbook/internal/errors"
)

// APIKeyHeader carries the shared key for write endpoints.
const APIKeyHeader = "X-API-Key"

// RequireAPIKey returns a Gin middleware that validates the X-API-Key header
// against apiKey. An empty apiKey leaves the routes open, which suits a
// single-user install on a trusted machine.
func RequireAPIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			WriteError(c, apperrors.ErrInvalidAPIKey)
			c.Abort()
			return
		}
		c.Next()
	}
}
