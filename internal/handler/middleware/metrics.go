package middleware

import (
	"strconv"

	"pricewatch/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// RequestMetrics counts requests by route template, not raw path, to keep
// label cardinality bounded.
func RequestMetrics(m *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
