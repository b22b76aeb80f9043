package services

import (
	"dejavu_backend/internal/models"
	"dejavu_backend/internal/repositories"
	"dejavu_backend/internal/services/dto"
	"dejavu_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	// CreateReview сохраняет отзыв и синхронно пересчитывает средний
	// рейтинг фотографа до возврата из вызова.
	CreateReview(db *gorm.DB, authorUserID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)

	GetPhotographerReviews(db *gorm.DB, photographerID string) ([]*dto.ReviewResponse, error)
}

type reviewService struct {
	reviewRepo       repositories.ReviewRepository
	userRepo         repositories.UserRepository
	clientRepo       repositories.ClientRepository
	photographerRepo repositories.PhotographerRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
	clientRepo repositories.ClientRepository,
	photographerRepo repositories.PhotographerRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:       reviewRepo,
		userRepo:         userRepo,
		clientRepo:       clientRepo,
		photographerRepo: photographerRepo,
	}
}

func (s *reviewService) CreateReview(db *gorm.DB, authorUserID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ValidationError(map[string]string{"rating": "Must be between 1 and 5"})
	}

	author, err := s.userRepo.FindByID(db, authorUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if author.Role != models.UserRoleClient {
		return nil, apperrors.NewForbiddenError("Only clients can leave reviews")
	}

	client, err := s.clientRepo.FindByUserID(db, authorUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.NewNotFoundError("client", "Client profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.photographerRepo.FindByID(db, req.PhotographerID); err != nil {
		if apperrors.Is(err, repositories.ErrPhotographerNotFound) {
			return nil, apperrors.NewNotFoundError("photographer", "Photographer not found")
		}
		return nil, apperrors.InternalError(err)
	}

	review := &models.Review{
		ClientID:       client.ID,
		PhotographerID: req.PhotographerID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	}
	if err := s.reviewRepo.Create(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Пересчет до возврата: после ответа average_rating уже отражает
	// новый отзыв. Конкурентные записи могут гоняться на агрегате
	// (last-write-wins) - принятая уступка, не гарантия сериализуемости.
	if _, err := s.reviewRepo.RecalculateAverageRating(db, req.PhotographerID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildReviewResponse(review), nil
}

func (s *reviewService) GetPhotographerReviews(db *gorm.DB, photographerID string) ([]*dto.ReviewResponse, error) {
	if _, err := s.photographerRepo.FindByID(db, photographerID); err != nil {
		if apperrors.Is(err, repositories.ErrPhotographerNotFound) {
			return nil, apperrors.NewNotFoundError("photographer", "Photographer not found")
		}
		return nil, apperrors.InternalError(err)
	}

	reviews, err := s.reviewRepo.FindByPhotographer(db, photographerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, buildReviewResponse(&reviews[i]))
	}
	return responses, nil
}

func buildReviewResponse(review *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:             review.ID,
		ClientID:       review.ClientID,
		PhotographerID: review.PhotographerID,
		Rating:         review.Rating,
		Comment:        review.Comment,
		CreatedAt:      review.CreatedAt,
	}
}
