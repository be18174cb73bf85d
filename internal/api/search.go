package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-analyzer/backend/internal/logger"
	"github.com/pageza/recipe-analyzer/backend/internal/middleware"
	"github.com/pageza/recipe-analyzer/backend/internal/service"
)

const (
	MsgSearchQueryRequired = "Search query is required"
	MsgSearchFailed        = "Failed to search meals"
)

type SearchHandler struct {
	browse service.IBrowseService
	log    *logger.Logger
}

func NewSearchHandler(browse service.IBrowseService, log *logger.Logger) *SearchHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &SearchHandler{browse: browse, log: log}
}

func (h *SearchHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/search", h.Search)
}

// Search proxies a free-text search and passes the upstream JSON through.
func (h *SearchHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: MsgSearchQueryRequired})
		return
	}

	raw, err := h.browse.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.log, err, MsgSearchFailed)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}
