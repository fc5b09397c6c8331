package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const correlationHeader = "X-Correlation-ID"

// RequestID injects a correlation id into the Gin context for every request.
// An inbound X-Correlation-ID is honored so callers can trace requests across
// services; otherwise a fresh uuid is generated. The id is echoed back on the
// response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlationHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(correlationHeader, id)
		c.Next()
	}
}
