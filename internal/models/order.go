package models

import "gorm.io/datatypes"

// Order - бронирование. Жизненного цикла нет: заказ либо есть, либо нет.
type Order struct {
	BaseModel
	ClientID       string         `gorm:"not null;index"`
	PhotographerID string         `gorm:"not null;index"`
	Date           datatypes.Date `gorm:"not null"`
	Time           datatypes.Time `gorm:"not null"`
	TotalCost      int            `gorm:"default:0;check:total_cost >= 0"`
}
