package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-analyzer/backend/internal/logger"
	"github.com/pageza/recipe-analyzer/backend/internal/service"
)

// Handlers groups the API handlers.
type Handlers struct {
	Analysis *AnalysisHandler
	Search   *SearchHandler
	Meals    *MealsHandler
}

// NewHandlers builds every handler over the given services.
func NewHandlers(analysis service.IAnalysisService, browse service.IBrowseService, log *logger.Logger) Handlers {
	return Handlers{
		Analysis: NewAnalysisHandler(analysis, log),
		Search:   NewSearchHandler(browse, log),
		Meals:    NewMealsHandler(browse, log),
	}
}

// SetupAPI registers the routes. Analysis and search are served at the
// root and under /api; the browse routes only under /api.
func SetupAPI(router *gin.Engine, h Handlers) {
	router.GET("/healthz", Health)

	v1 := router.Group("/api")
	for _, group := range []gin.IRoutes{router, v1} {
		h.Analysis.RegisterRoutes(group)
		h.Search.RegisterRoutes(group)
	}
	h.Meals.RegisterRoutes(v1)
}
