// Package httperror contains the error body returned by all endpoints.
package httperror

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Error struct {
	Message string            `json:"error" example:"the specified resource ID is not a valid UUID"`
	Fields  map[string]string `json:"fields,omitempty"` // Errors per field of the request body
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// WithFields returns an Error with the given field errors.
func WithFields(e error, fields map[string]string) Error {
	return Error{
		Message: e.Error(),
		Fields:  fields,
	}
}

// Unauthorized aborts the request with a 401 and a challenge for
// bearer authentication.
func Unauthorized(c *gin.Context, e error) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, New(e))
}
