package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// Metrics records count and latency per matched route template, so that
// /items/1 and /items/2 share one series.
func (mw Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.metrics == nil {
			c.Next()
			return
		}

		start := time.Now()
		mw.metrics.IncInFlight()
		defer mw.metrics.DecInFlight()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		mw.metrics.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
