package handlers

import (
	"net/http"

	"heptabet_backend/internal/services"
	"heptabet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	*BaseHandler
	transactionService services.TransactionService
}

func NewTransactionHandler(base *BaseHandler, transactionService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		BaseHandler:        base,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup, g *Guards) {
	txGroup := rg.Group("/transactions", g.Auth, g.CSRF)
	{
		txGroup.POST("", h.Submit)

		txGroup.GET("", g.Admin, h.List)
		txGroup.PUT("/:id/status", g.Admin, h.SetStatus)
	}
}

// Submit records a payment claim for manual review. It never changes the
// caller's tier; only an admin approval does.
func (h *TransactionHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tx, err := h.transactionService.Submit(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.transactionService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}

func (h *TransactionHandler) SetStatus(c *gin.Context) {
	id, ok := RequireParamID(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tx, err := h.transactionService.SetStatus(id, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}
