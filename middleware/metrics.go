package middleware

import (
	"time"

	"kympulse/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records every request on the metrics manager, labelled by
// route template so path parameters do not explode cardinality.
func MetricsMiddleware(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
