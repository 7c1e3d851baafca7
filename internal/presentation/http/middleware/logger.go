package middleware

import (
	"log"
	"time"

	"github.com/adiwira/kasirpos/pkg/utils"
	"github.com/gin-gonic/gin"
)

// RequestLogger tags every request with a correlation ID and writes one access
// log line per request. The operator field comes from the auth middleware and
// is "-" on unauthenticated routes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = utils.NewRequestID()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		operator := c.GetString("username")
		if operator == "" {
			operator = "-"
		}

		log.Printf("[%s] %s %s | %d | %s | %v",
			requestID[:8],
			c.Request.Method,
			path,
			c.Writer.Status(),
			operator,
			time.Since(start),
		)
		for _, e := range c.Errors {
			log.Printf("[%s] error: %v", requestID[:8], e.Err)
		}
	}
}
