package repositories

import (
	"errors"

	"heptabet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionRepository interface {
	Create(tx *models.PaymentTransaction) error
	FindByID(id string) (*models.PaymentTransaction, error)
	UpdateStatus(id string, status models.PaymentStatus) error
	FindAllOrdered() ([]models.PaymentTransaction, error)
}

type TransactionRepositoryImpl struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

func (r *TransactionRepositoryImpl) Create(tx *models.PaymentTransaction) error {
	return r.db.Create(tx).Error
}

func (r *TransactionRepositoryImpl) FindByID(id string) (*models.PaymentTransaction, error) {
	var tx models.PaymentTransaction
	err := r.db.First(&tx, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepositoryImpl) UpdateStatus(id string, status models.PaymentStatus) error {
	return r.db.Model(&models.PaymentTransaction{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *TransactionRepositoryImpl) FindAllOrdered() ([]models.PaymentTransaction, error) {
	var txs []models.PaymentTransaction
	err := r.db.Order("date DESC").Find(&txs).Error
	return txs, err
}
