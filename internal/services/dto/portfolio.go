package dto

// ======================
// Request DTOs
// ======================

type AddPortfolioPhotoRequest struct {
	Image       string `json:"image" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// ======================
// Response DTOs
// ======================

type PortfolioItemResponse struct {
	ID           string                `json:"id"`
	Photographer *PhotographerResponse `json:"photographer,omitempty"`
	Image        string                `json:"image"`
	Description  string                `json:"description"`
}
