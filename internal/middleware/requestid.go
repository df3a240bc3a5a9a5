package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the context key for the request id.
const RequestIDKey = "request_id"

// RequestID reuses an incoming X-Request-ID or generates one, echoes it on
// the response and stores it in the request context.
func RequestID(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
	}

	c.Header("X-Request-ID", requestID)
	c.Set(RequestIDKey, requestID)
	c.Next()
}

// GetRequestID returns the request id stored by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
