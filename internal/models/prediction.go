package models

import "gorm.io/datatypes"

type Prediction struct {
	BaseModel
	League     string           `gorm:"not null"`
	HomeTeam   string           `gorm:"not null"`
	AwayTeam   string           `gorm:"not null"`
	Date       string           `gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
	Time       string           `gorm:"type:varchar(5)"`                 // HH:MM
	Tip        string           `gorm:"not null"`
	Odds       float64
	Confidence int              // 1-10
	MinTier    SubscriptionTier `gorm:"type:varchar(20);not null;default:'Free'"`
	Status     MatchStatus      `gorm:"type:varchar(20);default:'Scheduled'"`
	Result     PredictionResult `gorm:"type:varchar(20);default:'Pending'"`
	TipsterID  string           `gorm:"index"`
	Score      string
	Analysis   datatypes.JSON   `gorm:"type:jsonb"` // tipster/AI commentary, free form
}

// RequiredTier implements access.GatedItem.
func (p *Prediction) RequiredTier() SubscriptionTier { return p.MinTier }

// Settled reports whether the real-world outcome is already known. A settled
// tip has no remaining predictive value and is never gated.
func (p *Prediction) Settled() bool {
	return p.Result == ResultWon || p.Result == ResultLost
}
