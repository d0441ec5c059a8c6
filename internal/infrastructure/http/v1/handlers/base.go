// Package handlers implements the v1 HTTP handlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"mercado/internal/core/apperror"
)

// fail records the error on the context for the error middleware to
// render and aborts the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindJSON binds the request body, converting gin binding failures into
// validation errors.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		fail(c, apperror.NewValidation("invalid request body").WithCause(err))
		return false
	}
	return true
}
