package middleware

import (
	"strings"
	"time"

	"pdrims-http-service/internal/infrastructure/metrics"
	"pdrims-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request as one structured entry and records its
// Prometheus metrics.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		done := metrics.RequestStarted()
		defer done()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		metrics.ObserveRequest(c.Request.Method, c.FullPath(), status, duration)

		entry := logger.WithFields(map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   status,
			"duration": duration.String(),
			"client":   c.ClientIP(),
		})
		switch {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	}
}

// CORS allows the configured origin. "*" allows any.
func CORS(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", strings.Join([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}, ", "))
		h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if origin != "*" {
			h.Add("Vary", "Origin")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
