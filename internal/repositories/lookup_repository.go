package repositories

import (
	"strings"

	"dejavu_backend/internal/models"

	"gorm.io/gorm"
)

// LookupRepository обслуживает справочники: страны, ниши, языки.
type LookupRepository interface {
	FindOrCreateCountry(db *gorm.DB, name string) (*models.Country, error)
	FindOrCreateNiche(db *gorm.DB, name string) (*models.Niche, error)
	FindOrCreateLanguages(db *gorm.DB, names []string) ([]models.Language, error)
}

type lookupRepository struct{}

func NewLookupRepository() LookupRepository {
	return &lookupRepository{}
}

func (r *lookupRepository) FindOrCreateCountry(db *gorm.DB, name string) (*models.Country, error) {
	var country models.Country
	err := db.Where("name = ?", strings.TrimSpace(name)).
		FirstOrCreate(&country, models.Country{Name: strings.TrimSpace(name)}).Error
	if err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *lookupRepository) FindOrCreateNiche(db *gorm.DB, name string) (*models.Niche, error) {
	var niche models.Niche
	err := db.Where("name = ?", strings.TrimSpace(name)).
		FirstOrCreate(&niche, models.Niche{Name: strings.TrimSpace(name)}).Error
	if err != nil {
		return nil, err
	}
	return &niche, nil
}

func (r *lookupRepository) FindOrCreateLanguages(db *gorm.DB, names []string) ([]models.Language, error) {
	languages := make([]models.Language, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var lang models.Language
		err := db.Where("name = ?", name).
			FirstOrCreate(&lang, models.Language{Name: name}).Error
		if err != nil {
			return nil, err
		}
		languages = append(languages, lang)
	}
	return languages, nil
}
