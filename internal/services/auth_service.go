package services

import (
	"strings"
	"time"

	"heptabet_backend/internal/access"
	"heptabet_backend/internal/auth"
	"heptabet_backend/internal/logger"
	"heptabet_backend/internal/models"
	"heptabet_backend/internal/pkg/email"
	"heptabet_backend/internal/repositories"
	"heptabet_backend/internal/services/dto"
	"heptabet_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResult, error)
	Login(req *dto.LoginRequest) (*dto.AuthResult, error)
	CurrentUser(userID string) (*dto.AuthResult, error)
	RequestPasswordReset(emailAddr string) error
	ResetPassword(req *dto.ResetPasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	jwtSecret     string
	jwtTTL        time.Duration

	// Accounts registered with exactly this email become admins. The only
	// privilege-escalation path; everything else registers as a plain user.
	adminEmail string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	jwtSecret string,
	jwtTTL time.Duration,
	adminEmail string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		jwtSecret:     jwtSecret,
		jwtTTL:        jwtTTL,
		adminEmail:    adminEmail,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResult, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	csrfSecret, err := auth.NewCSRFSecret()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := models.UserRoleUser
	if s.adminEmail != "" && strings.EqualFold(req.Email, s.adminEmail) {
		role = models.UserRoleAdmin
	}

	user := &models.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hashedPassword,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		Subscription: models.TierFree,
		CSRFSecret:   csrfSecret,
		JoinDate:     time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResult(user, csrfSecret)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Same error as a wrong password: account existence must not leak.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := access.EnforceExpiry(s.userRepo, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Rotate the anti-forgery secret on every login. A client racing an
	// older tab must treat the latest auth response as authoritative.
	csrfSecret, err := auth.NewCSRFSecret()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.userRepo.RotateCSRFSecret(user.ID, csrfSecret); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResult(user, csrfSecret)
}

// CurrentUser backs GET /auth/me: re-fetches the account (session claims are
// not proof of current role or tier), enforces expiry, re-issues the stored
// CSRF token.
func (s *AuthServiceImpl) CurrentUser(userID string) (*dto.AuthResult, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, apperrors.InternalError(err)
	}

	if err := access.EnforceExpiry(s.userRepo, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResult{
		User:      dto.NewUserResponse(user),
		CSRFToken: user.CSRFSecret,
	}, nil
}

func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(strings.ToLower(emailAddr))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Generic success upstream; no code is generated.
			return nil
		}
		return apperrors.InternalError(err)
	}

	now := time.Now()
	if user.ResetCodeSentAt != nil && now.Sub(*user.ResetCodeSentAt) < auth.ResetCooldown {
		return apperrors.ErrTooManyResetRequests
	}

	code, err := auth.NewResetCode()
	if err != nil {
		return apperrors.InternalError(err)
	}

	// Overwrites any previous code: only the latest one is redeemable.
	if err := s.userRepo.SetResetCode(user.ID, code, now.Add(auth.ResetCodeTTL), now); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendResetCode(user.Email, user.Name, code); err != nil {
		logger.Error("reset code dispatch failed", "error", err.Error(), "user_id", user.ID)
		// Re-open the cooldown window so the user can retry immediately;
		// the stored code is unreachable without the email.
		if clearErr := s.userRepo.SetResetCode(user.ID, code, now.Add(auth.ResetCodeTTL), now.Add(-auth.ResetCooldown)); clearErr != nil {
			logger.Error("failed to reset cooldown after dispatch failure", "error", clearErr.Error(), "user_id", user.ID)
		}
		return apperrors.ErrEmailDeliveryFailed
	}

	return nil
}

func (s *AuthServiceImpl) ResetPassword(req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Indistinguishable from a wrong code.
			return apperrors.ErrInvalidResetCode
		}
		return apperrors.InternalError(err)
	}

	// One error for missing, mismatched and expired codes alike.
	if user.ResetCode == "" || user.ResetCode != req.OTP {
		return apperrors.ErrInvalidResetCode
	}
	if user.ResetCodeExpiresAt == nil || user.ResetCodeExpiresAt.Before(time.Now()) {
		return apperrors.ErrInvalidResetCode
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}

	// Single use: the code is cleared on success.
	if err := s.userRepo.ClearResetCode(user.ID); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *AuthServiceImpl) buildAuthResult(user *models.User, csrfSecret string) (*dto.AuthResult, error) {
	token, err := auth.GenerateToken(s.jwtSecret, user.ID, user.Role, s.jwtTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResult{
		User:         dto.NewUserResponse(user),
		CSRFToken:    csrfSecret,
		SessionToken: token,
	}, nil
}
