package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-analyzer/backend/internal/logger"
	"github.com/pageza/recipe-analyzer/backend/internal/service"
)

type MealsHandler struct {
	browse service.IBrowseService
	log    *logger.Logger
}

func NewMealsHandler(browse service.IBrowseService, log *logger.Logger) *MealsHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &MealsHandler{browse: browse, log: log}
}

func (h *MealsHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/meals", h.ListMeals)
	router.GET("/meals/:id", h.GetMeal)
	router.GET("/categories", h.ListCategories)
	router.GET("/areas", h.ListAreas)
}

// ListMeals returns the listing selected by the letter, category, area and
// search query parameters.
func (h *MealsHandler) ListMeals(c *gin.Context) {
	var q service.BrowseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	page, err := h.browse.Home(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch meals")
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *MealsHandler) GetMeal(c *gin.Context) {
	detail, err := h.browse.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch meal")
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *MealsHandler) ListCategories(c *gin.Context) {
	categories, err := h.browse.Categories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Categories: categories})
}

func (h *MealsHandler) ListAreas(c *gin.Context) {
	areas, err := h.browse.Areas(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch areas")
		return
	}

	c.JSON(http.StatusOK, AreasResponse{Areas: areas})
}
