package repositories

import (
	"errors"

	"dejavu_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPhotographerNotFound = errors.New("photographer not found")

type PhotographerRepository interface {
	Create(db *gorm.DB, ph *models.Photographer) error
	FindByID(db *gorm.DB, id string) (*models.Photographer, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Photographer, error)
	FindAll(db *gorm.DB) ([]models.Photographer, error)
	Update(db *gorm.DB, ph *models.Photographer) error
	UpdateColumns(db *gorm.DB, id string, fields map[string]interface{}) error
	ReplaceLanguages(db *gorm.DB, ph *models.Photographer, languages []models.Language) error
	Delete(db *gorm.DB, ph *models.Photographer) error
}

type photographerRepository struct{}

func NewPhotographerRepository() PhotographerRepository {
	return &photographerRepository{}
}

func (r *photographerRepository) Create(db *gorm.DB, ph *models.Photographer) error {
	return db.Create(ph).Error
}

func (r *photographerRepository) FindByID(db *gorm.DB, id string) (*models.Photographer, error) {
	var ph models.Photographer
	err := db.Preload("Country").Preload("Niche").Preload("Languages").
		First(&ph, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotographerNotFound
		}
		return nil, err
	}
	return &ph, nil
}

func (r *photographerRepository) FindByUserID(db *gorm.DB, userID string) (*models.Photographer, error) {
	var ph models.Photographer
	err := db.Preload("Country").Preload("Niche").Preload("Languages").
		First(&ph, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotographerNotFound
		}
		return nil, err
	}
	return &ph, nil
}

// FindAll возвращает всю витрину в порядке вставки. Пагинации нет -
// осознанное ограничение при ожидаемых объемах.
func (r *photographerRepository) FindAll(db *gorm.DB) ([]models.Photographer, error) {
	var phs []models.Photographer
	err := db.Preload("Country").Preload("Niche").Preload("Languages").
		Order("created_at ASC").
		Find(&phs).Error
	return phs, err
}

func (r *photographerRepository) Update(db *gorm.DB, ph *models.Photographer) error {
	return db.Save(ph).Error
}

// UpdateColumns применяет только переданные поля, не трогая остальные.
func (r *photographerRepository) UpdateColumns(db *gorm.DB, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return db.Model(&models.Photographer{}).Where("id = ?", id).Updates(fields).Error
}

func (r *photographerRepository) ReplaceLanguages(db *gorm.DB, ph *models.Photographer, languages []models.Language) error {
	return db.Model(ph).Association("Languages").Replace(languages)
}

// Delete удаляет профиль вместе с заказами, отзывами и портфолио.
func (r *photographerRepository) Delete(db *gorm.DB, ph *models.Photographer) error {
	return db.Select("Photos", "Reviews", "Orders", "Languages").Delete(ph).Error
}
