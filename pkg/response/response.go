package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the stable error shape for every failure response.
type ErrorBody struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error kinds
const (
	KindValidation        = "validation_error"
	KindUnauthorized      = "unauthorized"
	KindConflict          = "conflict"
	KindNotFound          = "not_found"
	KindInternal          = "internal_error"
	KindDependencyTimeout = "dependency_timeout"
)

// ValidationError sends a 400 naming the offending field and the expected format
func ValidationError(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Error:   KindValidation,
		Field:   field,
		Message: message,
	})
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorBody{
		Error:   KindUnauthorized,
		Message: message,
	})
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorBody{
		Error:   KindConflict,
		Message: message,
	})
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{
		Error:   KindNotFound,
		Message: message,
	})
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Error:   KindInternal,
		Message: message,
	})
}

// DependencyTimeout sends a 504 when the data store did not answer in time
func DependencyTimeout(c *gin.Context, message string) {
	c.JSON(http.StatusGatewayTimeout, ErrorBody{
		Error:   KindDependencyTimeout,
		Message: message,
	})
}
