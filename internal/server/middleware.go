package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-bff/services/marketplace/helpers"
	"marketplace-bff/utils"
)

// ActingUserHeader names the caller identity forwarded by the gateway.
const ActingUserHeader = "X-User-ID"

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
		"user_id": helpers.ActingUser(c),
	})
}

// ActingUserMiddleware stores the caller's user id for the handlers.
// Requests without the header are anonymous.
func ActingUserMiddleware(c *gin.Context) {
	if id := c.GetHeader(ActingUserHeader); id != "" {
		c.Set(helpers.ActingUserKey, id)
	}
	c.Next()
}
