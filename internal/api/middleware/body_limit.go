package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-tracker/pkg/response"
)

// BodyLimit caps the request body at maxBytes. Requests that declare a larger
// Content-Length are rejected up front; chunked bodies are cut off by
// http.MaxBytesReader and reported by the handler's JSON binding.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Request body too large.")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
