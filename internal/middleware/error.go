package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "billbook/internal/errors"
	"billbook/internal/logger"
)

// WriteError renders err as {"error":{"code","message"}}. AppErrors keep
// their status and code; their internal cause is logged with the request ID
// and never sent to the client. Anything else becomes INTERNAL_ERROR.
func WriteError(c *gin.Context, err error) {
	log := logger.Get().With(
		"request_id", RequestID(c),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		log.Errorw("unexpected error", "error", err.Error())
		appErr = apperrors.ErrInternalServer
	} else if appErr.Internal != nil {
		log.Errorw("app error", "code", appErr.Code, "internal", appErr.Internal.Error())
	}

	c.JSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

// ErrorHandler returns a Gin middleware that renders the last error attached
// to the context with c.Error, unless the handler already wrote a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		WriteError(c, c.Errors.Last().Err)
	}
}
