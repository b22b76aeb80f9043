package models

type UserRole string

const (
	UserRolePhotographer UserRole = "photographer"
	UserRoleClient       UserRole = "client"
)

// User - учетная запись. Роль задается при регистрации и не меняется.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Name         string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
	IsActive     bool     `gorm:"default:true"`
	IsStaff      bool     `gorm:"default:false"`

	// Relations
	Photographer  *Photographer  `gorm:"foreignKey:UserID"`
	Client        *Client        `gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type RefreshToken struct {
	BaseModel
	UserID    string `gorm:"not null;index"`
	Token     string `gorm:"not null;uniqueIndex"`
	ExpiresAt int64  `gorm:"not null"`
}
