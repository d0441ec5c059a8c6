package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mercado/internal/core/apperror"
	appctx "mercado/internal/core/context"
	"mercado/pkg/logger"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable error details.
type ErrorBody struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
}

// ErrorHandler renders errors attached to the gin context as a JSON
// envelope. Application errors keep their code and details; anything
// else is masked as an internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		ctx := c.Request.Context()

		appErr, ok := apperror.AsAppError(err)
		if !ok {
			logger.Error(ctx, "unhandled error", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
				Code:      apperror.CodeInternal,
				Message:   "internal server error",
				RequestID: appctx.GetRequestID(ctx),
			}})
			return
		}

		if appErr.HTTPStatus >= 500 {
			logger.Error(ctx, "request error", "code", appErr.Code, "error", appErr)
		}

		c.JSON(appErr.HTTPStatus, ErrorResponse{Error: ErrorBody{
			Code:      appErr.Code,
			Message:   appErr.Message,
			Details:   appErr.Details,
			RequestID: appctx.GetRequestID(ctx),
		}})
	}
}
