package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/holdcalc/metrics"
)

// Metrics records per-request Prometheus counters and latency histograms.
// The route template (c.FullPath) is used as the path label so parameterised
// routes like /batch/:id do not explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}
