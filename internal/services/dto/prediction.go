package dto

import (
	"encoding/json"

	"heptabet_backend/internal/models"
)

type CreatePredictionRequest struct {
	League     string                  `json:"league" validate:"required"`
	HomeTeam   string                  `json:"homeTeam" validate:"required"`
	AwayTeam   string                  `json:"awayTeam" validate:"required"`
	Date       string                  `json:"date" validate:"required,len=10"`
	Time       string                  `json:"time" validate:"omitempty,len=5"`
	Tip        string                  `json:"tip" validate:"required"`
	Odds       float64                 `json:"odds" validate:"required,gt=1"`
	Confidence int                     `json:"confidence" validate:"required,min=1,max=10"`
	MinTier    models.SubscriptionTier `json:"minTier" validate:"required,oneof=Free Basic Standard Premium"`
	TipsterID  string                  `json:"tipsterId" validate:"omitempty"`
	Analysis   json.RawMessage         `json:"analysis,omitempty"`
}

// UpdatePredictionRequest settles or reschedules a prediction. Nil fields
// are left untouched.
type UpdatePredictionRequest struct {
	Status *models.MatchStatus      `json:"status" validate:"omitempty,oneof=Scheduled Live Finished"`
	Result *models.PredictionResult `json:"result" validate:"omitempty,oneof=Pending Won Lost Void"`
	Score  *string                  `json:"score" validate:"omitempty,max=16"`
}

// PredictionResponse mirrors the wire shape the web client expects. Tip is
// the placeholder text when Locked is true.
type PredictionResponse struct {
	ID         string                   `json:"id"`
	League     string                   `json:"league"`
	HomeTeam   string                   `json:"homeTeam"`
	AwayTeam   string                   `json:"awayTeam"`
	Date       string                   `json:"date"`
	Time       string                   `json:"time"`
	Tip        string                   `json:"tip"`
	Odds       float64                  `json:"odds"`
	Confidence int                      `json:"confidence"`
	MinTier    models.SubscriptionTier  `json:"minTier"`
	Status     models.MatchStatus       `json:"status"`
	Result     models.PredictionResult  `json:"result"`
	TipsterID  string                   `json:"tipsterId"`
	Score      string                   `json:"score,omitempty"`
	Analysis   json.RawMessage          `json:"analysis,omitempty"`
	Locked     bool                     `json:"locked"`
}
