package middleware

import (
	"github.com/gin-gonic/gin"

	"recyclehub/internal/core/apperror"
	"recyclehub/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON responses.
// Backend statuses pass through, validation is 400 and an unreachable backend is 502.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		appErr, ok := apperror.AsAppError(err)
		if !ok {
			logger.Error(c.Request.Context(), "unhandled error", "error", err)
			appErr = apperror.NewInternal(err).
				WithDetail("request_id", c.GetString("request_id"))
		} else if appErr.Err != nil {
			logger.Error(c.Request.Context(), "request error",
				"code", appErr.Code,
				"cause", appErr.Err,
			)
		}

		c.JSON(apperror.GetHTTPStatus(appErr), appErr)
	}
}
