package dto

import (
	"time"

	"heptabet_backend/internal/models"
)

type CreateTransactionRequest struct {
	PlanID     string               `json:"planId" validate:"required,oneof=basic standard premium"`
	Amount     string               `json:"amount" validate:"required,max=32"`
	Method     models.PaymentMethod `json:"method" validate:"required,oneof='Bank Transfer' USDT"`
	ReceiptURL string               `json:"receiptUrl" validate:"required"`
}

type UpdateTransactionStatusRequest struct {
	Status models.PaymentStatus `json:"status" validate:"required,oneof=Approved Rejected"`
}

type TransactionResponse struct {
	ID         string               `json:"id"`
	UserID     string               `json:"userId"`
	UserName   string               `json:"userName"`
	PlanID     string               `json:"planId"`
	Amount     string               `json:"amount"`
	Method     models.PaymentMethod `json:"method"`
	Status     models.PaymentStatus `json:"status"`
	Date       time.Time            `json:"date"`
	ReceiptURL string               `json:"receiptUrl"`
}

func NewTransactionResponse(t *models.PaymentTransaction) *TransactionResponse {
	return &TransactionResponse{
		ID:         t.ID,
		UserID:     t.UserID,
		UserName:   t.UserName,
		PlanID:     t.PlanID,
		Amount:     t.Amount,
		Method:     t.Method,
		Status:     t.Status,
		Date:       t.Date,
		ReceiptURL: t.ReceiptURL,
	}
}
