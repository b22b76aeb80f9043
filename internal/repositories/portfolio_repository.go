package repositories

import (
	"dejavu_backend/internal/models"

	"gorm.io/gorm"
)

type PortfolioRepository interface {
	Create(db *gorm.DB, item *models.PortfolioItem) error
	FindByPhotographer(db *gorm.DB, photographerID string) ([]models.PortfolioItem, error)
}

type portfolioRepository struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &portfolioRepository{}
}

func (r *portfolioRepository) Create(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Create(item).Error
}

func (r *portfolioRepository) FindByPhotographer(db *gorm.DB, photographerID string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Where("photographer_id = ?", photographerID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
