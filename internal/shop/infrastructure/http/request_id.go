package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-Id"

// NewRequestIdMiddleware reuses the caller's request id when present so log
// lines can be correlated across retries, and mints one otherwise.
func NewRequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}

		c.Set(RequestIdHeader, requestId)
		c.Writer.Header().Set(RequestIdHeader, requestId)

		c.Next()
	}
}
