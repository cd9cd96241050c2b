package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgBadID     = "Error, the id must be a number"
	msgMissing   = "Invalid request, missing data"
	msgNotFound  = "Not Found"
	msgDuplicate = "Duplicate"
	msgInternal  = "Internal Server Error"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

type idParam struct {
	ID uint `uri:"id" binding:"required"`
}

func bindID(c *gin.Context) (uint, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		message(c, http.StatusBadRequest, msgBadID)
		return 0, false
	}
	return p.ID, true
}

func message(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

// fail logs the underlying error and sends only msg to the client.
func fail(c *gin.Context, status int, msg string, err error) {
	log.Printf("[%s] %s %s: %v", c.GetString(RequestIDKey), c.Request.Method, c.FullPath(), err)
	message(c, status, msg)
}

// list writes items, or 204 with no body when there are none.
func list[T any](c *gin.Context, items []T) {
	if len(items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, items)
}
