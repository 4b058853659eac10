package dto

import (
	"time"

	"heptabet_backend/internal/models"
)

// UpdateUserSubscriptionRequest is the admin operation that grants or edits
// a user's paid tier. A null expiry means no scheduled lapse.
type UpdateUserSubscriptionRequest struct {
	Subscription           models.SubscriptionTier `json:"subscription" validate:"required,oneof=Free Basic Standard Premium"`
	SubscriptionExpiryDate *time.Time              `json:"subscriptionExpiryDate"`
}

type AnalyzeRequest struct {
	PredictionID string `json:"predictionId" validate:"required,uuid"`
}

type AnalyzeResponse struct {
	Analysis string `json:"analysis"`
}
