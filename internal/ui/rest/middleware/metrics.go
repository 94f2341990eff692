package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khedhrije/kingdom-dashboard/pkg/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per registered route, so
// path parameters and unknown paths do not explode label cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveHTTPRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
