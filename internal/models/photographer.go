package models

// Photographer - профиль фотографа. Может существовать без учетной записи
// (UserID NULL); удаление учетной записи профиль не трогает.
//
// AverageRating - денормализованное поле: всегда среднее арифметическое
// рейтингов всех отзывов на фотографа (0, если отзывов нет). Пересчитывается
// синхронно при каждой записи отзыва и никогда не принимается от клиента.
type Photographer struct {
	BaseModel
	UserID *string `gorm:"uniqueIndex"`
	Name   string  `gorm:"not null"`
	Email  string  `gorm:"uniqueIndex;not null"`

	CountryID *string `gorm:"index"`
	NicheID   *string `gorm:"index"`
	City      string
	Instagram string

	PricePerHour              int `gorm:"default:0;check:price_per_hour >= 0"`
	ProfilePicture            string
	PortfolioCover            string
	AvailableForInternational bool    `gorm:"default:false"`
	AverageRating             float64 `gorm:"default:0"`

	// Relations
	Country   *Country        `gorm:"foreignKey:CountryID;constraint:OnDelete:SET NULL"`
	Niche     *Niche          `gorm:"foreignKey:NicheID;constraint:OnDelete:SET NULL"`
	Languages []Language      `gorm:"many2many:photographer_languages"`
	Photos    []PortfolioItem `gorm:"foreignKey:PhotographerID;constraint:OnDelete:CASCADE"`
	Reviews   []Review        `gorm:"foreignKey:PhotographerID;constraint:OnDelete:CASCADE"`
	Orders    []Order         `gorm:"foreignKey:PhotographerID;constraint:OnDelete:CASCADE"`
}
