package models

import "time"

type PaymentTransaction struct {
	BaseModel
	UserID     string        `gorm:"not null;index"`
	UserName   string
	PlanID     string        `gorm:"not null"` // "basic" | "standard" | "premium"
	Amount     string
	Method     PaymentMethod `gorm:"type:varchar(20)"`
	Status     PaymentStatus `gorm:"type:varchar(20);default:'Pending'"`
	Date       time.Time     `gorm:"default:now()"`
	ReceiptURL string        `gorm:"type:text"` // URL or data URI uploaded by the user
}
