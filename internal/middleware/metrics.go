package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/benkhawiya/benkhawiya/internal/observability/metrics"
)

// Metrics returns a middleware that records request count and duration
// into the collector. Unmatched routes are labeled by raw path so the
// endpoint cardinality stays bounded to registered routes plus a 404 bucket.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		collector.RequestCount.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		collector.RequestDuration.WithLabelValues(c.Request.Method, endpoint, status).
			Observe(time.Since(start).Seconds())
	}
}
