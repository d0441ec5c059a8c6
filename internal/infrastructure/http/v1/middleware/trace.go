// Package middleware provides the gin middleware chain.
package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "mercado/internal/core/context"
)

const (
	// HeaderRequestID carries the caller-supplied request id.
	HeaderRequestID = "X-Request-ID"
	// HeaderTraceID echoes the trace id back to the caller.
	HeaderTraceID = "X-Trace-ID"
)

// Trace attaches a trace context to every request. An inbound
// X-Request-ID is honored; otherwise a fresh one is generated.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		tc := appctx.NewTraceContext()
		if rid := c.GetHeader(HeaderRequestID); rid != "" {
			tc.RequestID = rid
		}

		ctx := appctx.WithTrace(c.Request.Context(), tc)
		c.Request = c.Request.WithContext(ctx)

		c.Header(HeaderRequestID, tc.RequestID)
		c.Header(HeaderTraceID, tc.TraceID)

		c.Next()
	}
}
