package database

import (
	"fmt"

	"dejavu_backend/internal/config"
	"dejavu_backend/internal/logger"
	"dejavu_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с URL из конфига
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей и сеет справочники
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	// uuid_generate_v4 для первичных ключей
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid extension: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Country{},
		&models.Niche{},
		&models.Language{},
		&models.Photographer{},
		&models.Client{},
		&models.Order{},
		&models.Review{},
		&models.PortfolioItem{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	if err := seedLookups(db); err != nil {
		return fmt.Errorf("lookup seeding failed: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}

// seedLookups наполняет справочники стартовым набором. FirstOrCreate
// делает сидинг идемпотентным: повторный запуск ничего не дублирует.
func seedLookups(db *gorm.DB) error {
	niches := []string{
		"Wedding", "Portrait", "Fashion", "Street", "Product",
		"Travel", "Wildlife", "Event", "Food", "Architecture",
	}
	for _, name := range niches {
		if err := db.FirstOrCreate(&models.Niche{}, models.Niche{Name: name}).Error; err != nil {
			return err
		}
	}

	languages := []string{
		"English", "Russian", "Kazakh", "Spanish", "French", "German",
	}
	for _, name := range languages {
		if err := db.FirstOrCreate(&models.Language{}, models.Language{Name: name}).Error; err != nil {
			return err
		}
	}

	countries := []string{
		"Kazakhstan", "United States", "United Kingdom", "Germany",
		"France", "Spain", "Italy",
	}
	for _, name := range countries {
		if err := db.FirstOrCreate(&models.Country{}, models.Country{Name: name}).Error; err != nil {
			return err
		}
	}

	return nil
}
