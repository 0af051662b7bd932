package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/logger"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/types"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler recovers panics into a JSON 500 and maps errors attached via
// c.Error to a status derived from their kind.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", "error", r, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			c.JSON(StatusForError(err), ErrorResponse{Error: err.Error()})
		}
	}
}

// StatusForError maps an error kind to its HTTP status. Invalid input is the
// caller's fault, external service failures are upstream's, export failures
// and everything else are ours.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrExternalService):
		return http.StatusBadGateway
	case errors.Is(err, types.ErrExport):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
