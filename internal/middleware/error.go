package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-analyzer/backend/internal/logger"
	"github.com/pageza/recipe-analyzer/backend/internal/observability"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MsgInternalError is the body sent for any unexpected failure.
const MsgInternalError = "Internal server error"

// Recovery turns a panic in a handler into a logged 500 with a JSON error
// body. Nothing about the panic is sent to the client.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.NewNop()
	}
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				observability.PanicRecoveries.Inc()
				log.Error("panic recovered",
					"panic", fmt.Sprint(rec),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(ctxKeyRequestID),
					"stack", string(debug.Stack()),
				)
				if c.Writer.Written() {
					c.Abort()
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: MsgInternalError})
			}
		}()
		c.Next()
	}
}
