package handlers

import (
	"net/http"
	"time"

	"heptabet_backend/internal/services"
	"heptabet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	*BaseHandler
	analysisService services.AnalysisService
}

func NewAnalysisHandler(base *BaseHandler, analysisService services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		BaseHandler:     base,
		analysisService: analysisService,
	}
}

func (h *AnalysisHandler) RegisterRoutes(rg *gin.RouterGroup, g *Guards) {
	rg.POST("/analyze", g.Auth, g.CSRF, h.Analyze)
}

func (h *AnalysisHandler) Analyze(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AnalyzeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.analysisService.Analyze(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HealthCheck is unauthenticated and bypasses all guards.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
