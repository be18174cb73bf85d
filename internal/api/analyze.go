package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-analyzer/backend/internal/logger"
	"github.com/pageza/recipe-analyzer/backend/internal/middleware"
	"github.com/pageza/recipe-analyzer/backend/internal/service"
)

type AnalysisHandler struct {
	analysis service.IAnalysisService
	log      *logger.Logger
}

func NewAnalysisHandler(analysis service.IAnalysisService, log *logger.Logger) *AnalysisHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &AnalysisHandler{analysis: analysis, log: log}
}

func (h *AnalysisHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/analyze", h.Analyze)
}

// Analyze classifies the difficulty of the requested recipe.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("failed to decode analyze request", "error", err, "request_id", middleware.GetRequestID(c))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{Error: middleware.MsgInternalError})
		return
	}
	if req.MealID == "" {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: service.MsgMealIDRequired})
		return
	}

	analysis, err := h.analysis.Analyze(c.Request.Context(), req.MealID)
	if err != nil {
		respondError(c, h.log, err, middleware.MsgInternalError)
		return
	}

	c.JSON(http.StatusOK, analysis)
}
