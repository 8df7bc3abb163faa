// Package middleware provides the gin middleware of the blog server:
// request ids, Prometheus metrics, browser session resolution and the
// route guard.
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/metrics"
)

// unmatchedRoute labels requests that hit no route, keeping label
// cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics records request count, duration and in-flight requests per route
// template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		timer := metrics.NewTimer()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		timer.ObserveDuration(metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route))
	}
}
