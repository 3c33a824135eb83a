package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ZapLogger logs requests: API paths at info level, everything else
// (static files, SPA fallback) at debug.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)

		path := c.Request.URL.Path
		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", dur.String(),
			"clientIP", c.ClientIP(),
		}
		if strings.HasPrefix(path, "/api/") {
			log.Sugar().Infow("HTTP", fields...)
		} else {
			log.Sugar().Debugw("HTTP", fields...)
		}
	}
}
