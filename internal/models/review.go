package models

// Review - отзыв клиента на фотографа. Создается один раз, не обновляется
// и не удаляется. Запись отзыва синхронно пересчитывает AverageRating
// фотографа.
type Review struct {
	BaseModel
	ClientID       string `gorm:"not null;index"`
	PhotographerID string `gorm:"not null;index"`
	Rating         int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment        string

	// Relations
	Client       *Client       `gorm:"foreignKey:ClientID"`
	Photographer *Photographer `gorm:"foreignKey:PhotographerID"`
}
