package models

import "time"

type User struct {
	BaseModel
	Name         string           `gorm:"not null"`
	Email        string           `gorm:"uniqueIndex;not null"`
	PasswordHash string           `gorm:"not null"`
	PhoneNumber  string
	Role         UserRole         `gorm:"type:varchar(20);not null;default:'user'"`
	Subscription SubscriptionTier `gorm:"type:varchar(20);not null;default:'Free'"`

	// Only meaningful for tiers above Free. Kept after a downgrade for audit.
	SubscriptionExpiresAt *time.Time

	// Rotated on every login/registration, compared against X-CSRF-Token.
	CSRFSecret string

	// One-time password recovery code. ResetCodeSentAt drives the
	// resend cooldown independently of the code's own expiry.
	ResetCode          string
	ResetCodeExpiresAt *time.Time
	ResetCodeSentAt    *time.Time

	JoinDate time.Time `gorm:"default:now()"`
}
