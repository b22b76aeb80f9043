package models

// Справочники. Только имя; на них ссылается Photographer.

type Country struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Niche struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Language struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
