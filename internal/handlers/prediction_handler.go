package handlers

import (
	"net/http"

	"heptabet_backend/internal/middleware"
	"heptabet_backend/internal/services"
	"heptabet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PredictionHandler struct {
	*BaseHandler
	predictionService services.PredictionService
}

func NewPredictionHandler(base *BaseHandler, predictionService services.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		BaseHandler:       base,
		predictionService: predictionService,
	}
}

func (h *PredictionHandler) RegisterRoutes(rg *gin.RouterGroup, g *Guards) {
	// Listing is public; masking happens per item against whatever session
	// is present.
	rg.GET("/predictions", g.OptionalAuth, h.List)

	admin := rg.Group("/predictions", g.Auth, g.CSRF, g.Admin)
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *PredictionHandler) List(c *gin.Context) {
	predictions, err := h.predictionService.List(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, predictions)
}

func (h *PredictionHandler) Create(c *gin.Context) {
	var req dto.CreatePredictionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	prediction, err := h.predictionService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, prediction)
}

func (h *PredictionHandler) Update(c *gin.Context) {
	id, ok := RequireParamID(c)
	if !ok {
		return
	}

	var req dto.UpdatePredictionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	prediction, err := h.predictionService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, prediction)
}

func (h *PredictionHandler) Delete(c *gin.Context) {
	id, ok := RequireParamID(c)
	if !ok {
		return
	}

	if err := h.predictionService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prediction deleted"})
}
