package repositories

import (
	"errors"

	"heptabet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPredictionNotFound = errors.New("prediction not found")

type PredictionRepository interface {
	Create(p *models.Prediction) error
	FindByID(id string) (*models.Prediction, error)
	Update(p *models.Prediction) error
	Delete(id string) error
	FindAllOrdered() ([]models.Prediction, error)
}

type PredictionRepositoryImpl struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &PredictionRepositoryImpl{db: db}
}

func (r *PredictionRepositoryImpl) Create(p *models.Prediction) error {
	return r.db.Create(p).Error
}

func (r *PredictionRepositoryImpl) FindByID(id string) (*models.Prediction, error) {
	var p models.Prediction
	err := r.db.First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPredictionNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PredictionRepositoryImpl) Update(p *models.Prediction) error {
	return r.db.Save(p).Error
}

func (r *PredictionRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Prediction{}, "id = ?", id).Error
}

// FindAllOrdered returns newest match days first, earliest kick-off first
// within a day.
func (r *PredictionRepositoryImpl) FindAllOrdered() ([]models.Prediction, error) {
	var predictions []models.Prediction
	err := r.db.Order("date DESC, time ASC").Find(&predictions).Error
	return predictions, err
}
