package dto

import (
	"time"

	"heptabet_backend/internal/models"
)

type RegisterRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=64"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20"`
	Password    string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// UserResponse is the public view of an account. Credential hashes and CSRF
// and reset-code state never leave the server this way.
type UserResponse struct {
	ID                     string                  `json:"id"`
	Name                   string                  `json:"name"`
	Email                  string                  `json:"email"`
	PhoneNumber            string                  `json:"phoneNumber,omitempty"`
	Role                   models.UserRole         `json:"role"`
	Subscription           models.SubscriptionTier `json:"subscription"`
	SubscriptionExpiryDate *time.Time              `json:"subscriptionExpiryDate,omitempty"`
	JoinDate               time.Time               `json:"joinDate"`
}

func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:                     u.ID,
		Name:                   u.Name,
		Email:                  u.Email,
		PhoneNumber:            u.PhoneNumber,
		Role:                   u.Role,
		Subscription:           u.Subscription,
		SubscriptionExpiryDate: u.SubscriptionExpiresAt,
		JoinDate:               u.JoinDate,
	}
}

// AuthResult is the body of every successful auth response. SessionToken is
// delivered only through the HttpOnly cookie, never in the body.
type AuthResult struct {
	User      *UserResponse `json:"user"`
	CSRFToken string        `json:"csrfToken"`

	SessionToken string `json:"-"`
}
