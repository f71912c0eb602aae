package middlewares

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-app/utils"
)

// MetricsMiddleware records request counts and latency per route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		utils.TrackInFlight(1)
		defer utils.TrackInFlight(-1)

		c.Next()

		// FullPath gives "/menus/:index", so indices don't blow up label cardinality
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		utils.ObserveRequest(
			strings.ToUpper(c.Request.Method),
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
