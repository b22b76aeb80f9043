package dto

// ======================
// Request DTOs
// ======================

type CreatePhotographerRequest struct {
	Name                      string   `json:"name" validate:"required,max=101"`
	Email                     string   `json:"email" validate:"required,email"`
	Country                   string   `json:"country" validate:"omitempty,max=255"`
	Niche                     string   `json:"niche" validate:"omitempty,max=255"`
	City                      string   `json:"city" validate:"omitempty,max=255"`
	Instagram                 string   `json:"instagram" validate:"omitempty,url,max=2000"`
	Languages                 []string `json:"languages_spoken" validate:"omitempty,dive,max=101"`
	PricePerHour              int      `json:"price_per_hour" validate:"omitempty,min=0"`
	AvailableForInternational bool     `json:"available_for_international"`
}

type UpdatePhotographerRequest struct {
	ID                        string    `json:"id" validate:"required"`
	Name                      *string   `json:"name,omitempty" validate:"omitempty,max=101"`
	Email                     *string   `json:"email,omitempty" validate:"omitempty,email"`
	Country                   *string   `json:"country,omitempty" validate:"omitempty,max=255"`
	Niche                     *string   `json:"niche,omitempty" validate:"omitempty,max=255"`
	City                      *string   `json:"city,omitempty" validate:"omitempty,max=255"`
	Instagram                 *string   `json:"instagram,omitempty" validate:"omitempty,url,max=2000"`
	Languages                 *[]string `json:"languages_spoken,omitempty" validate:"omitempty,dive,max=101"`
	PricePerHour              *int      `json:"price_per_hour,omitempty" validate:"omitempty,min=0"`
	AvailableForInternational *bool     `json:"available_for_international,omitempty"`
}

type DeletePhotographerRequest struct {
	ID string `json:"id" validate:"required"`
}

type UpdateProfilePictureRequest struct {
	ProfilePicture string `json:"profile_picture" validate:"required"`
}

// ======================
// Response DTOs
// ======================

type PhotographerResponse struct {
	ID                        string   `json:"id"`
	Name                      string   `json:"name"`
	Country                   string   `json:"country"`
	Niche                     string   `json:"niche"`
	City                      string   `json:"city,omitempty"`
	Instagram                 string   `json:"instagram,omitempty"`
	PricePerHour              int      `json:"price_per_hour"`
	Languages                 []string `json:"languages_spoken"`
	AvailableForInternational bool     `json:"available_for_international"`
	AverageRating             float64  `json:"average_rating"`
	ProfilePicture            string   `json:"profile_picture,omitempty"`
	PortfolioCover            string   `json:"portfolio_cover,omitempty"`
}

type ProfilePictureResponse struct {
	ProfilePicture string `json:"profile_picture"`
}
