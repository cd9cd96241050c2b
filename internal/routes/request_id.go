package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard/internal/controllers"
)

const requestIDHeader = "X-Request-ID"

// RequestID echoes the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(controllers.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
