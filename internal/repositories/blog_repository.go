package repositories

import (
	"errors"

	"heptabet_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBlogPostNotFound = errors.New("blog post not found")

type BlogRepository interface {
	Create(post *models.BlogPost) error
	FindByID(id string) (*models.BlogPost, error)
	Delete(id string) error
	FindAllOrdered() ([]models.BlogPost, error)
}

type BlogRepositoryImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &BlogRepositoryImpl{db: db}
}

func (r *BlogRepositoryImpl) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *BlogRepositoryImpl) FindByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.BlogPost{}, "id = ?", id).Error
}

func (r *BlogRepositoryImpl) FindAllOrdered() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Order("date DESC").Find(&posts).Error
	return posts, err
}
