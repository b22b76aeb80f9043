package models

// PortfolioItem - одна опубликованная фотография портфолио.
// Image - ссылка на объект в хранилище, не сам файл.
type PortfolioItem struct {
	BaseModel
	PhotographerID string `gorm:"not null;index"`
	Image          string `gorm:"not null"`
	Description    string
}
