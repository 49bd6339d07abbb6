package middleware

import (
	"strconv"
	"time"

	"suggestion-app/src/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware HTTPリクエストのPrometheusメトリクスを記録するmiddleware
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// メトリクスエンドポイント自身は計測しない
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
