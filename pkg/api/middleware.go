package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// handlerFunc is a gin handler that reports failure by returning an error.
type handlerFunc func(c *gin.Context) error

// handle adapts h to gin. A returned *HTTPError is written as-is; any
// other error goes through mapServiceError.
func handle(h handlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}
		var he *HTTPError
		if !errors.As(err, &he) {
			he = mapServiceError(err)
		}
		c.AbortWithStatusJSON(he.Code, he)
	}
}

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// requestLogger logs one line per request at debug level, or warn for 5xx.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration", time.Since(start),
		}
		if status >= 500 {
			slog.Warn("HTTP request failed", attrs...)
			return
		}
		slog.Debug("HTTP request", attrs...)
	}
}
