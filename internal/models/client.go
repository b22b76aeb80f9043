package models

// Client - профиль клиента. LastOrderID - legacy-ссылка на единственный
// заказ, сохранена для совместимости; актуальный набор заказов в Orders.
type Client struct {
	BaseModel
	UserID      *string `gorm:"uniqueIndex"`
	Name        string  `gorm:"not null"`
	LastOrderID *string `gorm:"index"`

	// Relations
	LastOrder *Order  `gorm:"foreignKey:LastOrderID;constraint:OnDelete:SET NULL"`
	Orders    []Order `gorm:"foreignKey:ClientID"`
}
