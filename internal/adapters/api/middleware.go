package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

func observeRequests(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

func sessionToken(c *gin.Context) string {
	return c.GetHeader(SessionTokenHeader)
}
