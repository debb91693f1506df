// README: Access log middleware.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"tripsense/internal/logger"
)

func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		l := logger.FromContext(c.Request.Context()).With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		)
		switch {
		case status >= 500:
			l.Error("request failed")
		case status >= 400:
			l.Warn("request rejected")
		default:
			l.Info("request served")
		}
	}
}
