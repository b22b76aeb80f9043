package services

import (
	"dejavu_backend/internal/models"
	"dejavu_backend/internal/repositories"
	"dejavu_backend/internal/services/dto"
	"dejavu_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PortfolioService interface {
	// AddPhoto публикует фотографию в портфолио фотографа, привязанного
	// к учетной записи. Только для роли photographer.
	AddPhoto(db *gorm.DB, userID string, req *dto.AddPortfolioPhotoRequest) (*dto.PortfolioItemResponse, error)

	GetPhotographerPhotos(db *gorm.DB, photographerID string) ([]*dto.PortfolioItemResponse, error)
}

type portfolioService struct {
	portfolioRepo    repositories.PortfolioRepository
	userRepo         repositories.UserRepository
	photographerRepo repositories.PhotographerRepository
}

func NewPortfolioService(
	portfolioRepo repositories.PortfolioRepository,
	userRepo repositories.UserRepository,
	photographerRepo repositories.PhotographerRepository,
) PortfolioService {
	return &portfolioService{
		portfolioRepo:    portfolioRepo,
		userRepo:         userRepo,
		photographerRepo: photographerRepo,
	}
}

func (s *portfolioService) AddPhoto(db *gorm.DB, userID string, req *dto.AddPortfolioPhotoRequest) (*dto.PortfolioItemResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRolePhotographer {
		return nil, apperrors.NewForbiddenError("Only photographers can upload photos")
	}

	ph, err := s.photographerRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPhotographerNotFound) {
			return nil, apperrors.NewNotFoundError("photographer", "Photographer profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	item := &models.PortfolioItem{
		PhotographerID: ph.ID,
		Image:          req.Image,
		Description:    req.Description,
	}
	if err := s.portfolioRepo.Create(db, item); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PortfolioItemResponse{
		ID:           item.ID,
		Photographer: buildPhotographerResponse(ph),
		Image:        item.Image,
		Description:  item.Description,
	}, nil
}

func (s *portfolioService) GetPhotographerPhotos(db *gorm.DB, photographerID string) ([]*dto.PortfolioItemResponse, error) {
	if _, err := s.photographerRepo.FindByID(db, photographerID); err != nil {
		if apperrors.Is(err, repositories.ErrPhotographerNotFound) {
			return nil, apperrors.NewNotFoundError("photographer", "Photographer not found")
		}
		return nil, apperrors.InternalError(err)
	}

	items, err := s.portfolioRepo.FindByPhotographer(db, photographerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.PortfolioItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, &dto.PortfolioItemResponse{
			ID:          item.ID,
			Image:       item.Image,
			Description: item.Description,
		})
	}
	return responses, nil
}
