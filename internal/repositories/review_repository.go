package repositories

import (
	"errors"

	"dejavu_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByPhotographer(db *gorm.DB, photographerID string) ([]models.Review, error)

	// RecalculateAverageRating пересчитывает среднее по всем отзывам
	// фотографа и сохраняет его в профиле. Возвращает новое значение.
	// Нет отзывов - среднее 0, не NULL.
	RecalculateAverageRating(db *gorm.DB, photographerID string) (float64, error)
}

type reviewRepository struct{}

func NewReviewRepository() ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *reviewRepository) FindByPhotographer(db *gorm.DB, photographerID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("photographer_id = ?", photographerID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) RecalculateAverageRating(db *gorm.DB, photographerID string) (float64, error) {
	// COALESCE дает 0 для фотографа без отзывов
	var average float64
	err := db.Model(&models.Review{}).
		Where("photographer_id = ?", photographerID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error
	if err != nil {
		return 0, err
	}

	err = db.Model(&models.Photographer{}).
		Where("id = ?", photographerID).
		Update("average_rating", average).Error
	if err != nil {
		return 0, err
	}

	return average, nil
}
