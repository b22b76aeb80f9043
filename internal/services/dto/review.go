package dto

import "time"

// ======================
// Request DTOs
// ======================

type CreateReviewRequest struct {
	PhotographerID string `json:"photographer" validate:"required"`
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	Comment        string `json:"comment" validate:"omitempty,max=2000"`
}

// ======================
// Response DTOs
// ======================

type ReviewResponse struct {
	ID             string    `json:"id"`
	ClientID       string    `json:"client"`
	PhotographerID string    `json:"photographer"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}
