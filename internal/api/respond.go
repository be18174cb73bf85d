package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/recipe-analyzer/backend/internal/errors"
	"github.com/pageza/recipe-analyzer/backend/internal/logger"
	"github.com/pageza/recipe-analyzer/backend/internal/middleware"
)

// respondError writes {"error": msg}. Caller errors (invalid input, not
// found) carry their own message; anything else is logged and answered
// with fallback.
func respondError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	_ = c.Error(err)

	status := apperrors.HTTPStatus(apperrors.CodeOf(err))
	if status < http.StatusInternalServerError {
		msg := fallback
		var se *apperrors.StructuredError
		if errors.As(err, &se) && se.Message != "" {
			msg = se.Message
		}
		c.JSON(status, middleware.ErrorResponse{Error: msg})
		return
	}

	log.Error(fallback,
		"error", err,
		"path", c.FullPath(),
		"request_id", middleware.GetRequestID(c),
	)
	c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{Error: fallback})
}
