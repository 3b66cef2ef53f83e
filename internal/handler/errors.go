package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/urbanmobility/taxi-backend-go/pkg/response"
)

// respondStoreError maps a repository error to the documented response shape.
// A deadline hit means the data store did not answer in time (504); anything
// else is a plain internal error.
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		response.DependencyTimeout(c, "data store did not respond in time")
		return
	}
	response.InternalError(c, err.Error())
}
