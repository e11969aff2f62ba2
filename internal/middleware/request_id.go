package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"item-api/pkg/log"
)

const (
	// RequestIDHeader carries the correlation ID in both directions.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the gin context key holding the ID.
	RequestIDKey = "request_id"

	maxRequestIDLen = 128
)

// RequestID reuses the caller's X-Request-ID or generates a UUID, echoes it in
// the response and stores it in the request context for the logger.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}

// GetRequestID returns the ID stored by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
