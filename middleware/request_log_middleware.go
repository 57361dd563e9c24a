package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id and logs its outcome
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Printf("[http] ❌ %s %s status=%d took=%s id=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start), requestID)
		case status >= 400:
			log.Printf("[http] ⚠️ %s %s status=%d took=%s id=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start), requestID)
		default:
			log.Printf("[http] %s %s status=%d took=%s id=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start), requestID)
		}
	}
}
