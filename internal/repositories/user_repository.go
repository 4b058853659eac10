package repositories

import (
	"errors"
	"time"

	"heptabet_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
	FindAll() ([]models.User, error)

	// Single-row read-modify-write helpers. Each relies on the store's
	// per-statement atomicity; no application-level transactions.
	RotateCSRFSecret(userID, secret string) error
	UpdatePassword(userID, passwordHash string) error
	UpdateSubscription(userID string, tier models.SubscriptionTier, expiresAt *time.Time) error
	DowngradeTier(userID string, tier models.SubscriptionTier) error
	SetResetCode(userID, code string, expiresAt, sentAt time.Time) error
	ClearResetCode(userID string) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

func (r *UserRepositoryImpl) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("join_date DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) RotateCSRFSecret(userID, secret string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("csrf_secret", secret).Error
}

func (r *UserRepositoryImpl) UpdatePassword(userID, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

func (r *UserRepositoryImpl) UpdateSubscription(userID string, tier models.SubscriptionTier, expiresAt *time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"subscription":            tier,
			"subscription_expires_at": expiresAt,
		}).Error
}

// DowngradeTier resets the tier but keeps subscription_expires_at for audit.
func (r *UserRepositoryImpl) DowngradeTier(userID string, tier models.SubscriptionTier) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("subscription", tier).Error
}

func (r *UserRepositoryImpl) SetResetCode(userID, code string, expiresAt, sentAt time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_code":            code,
			"reset_code_expires_at": expiresAt,
			"reset_code_sent_at":    sentAt,
		}).Error
}

func (r *UserRepositoryImpl) ClearResetCode(userID string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_code":            "",
			"reset_code_expires_at": nil,
		}).Error
}
