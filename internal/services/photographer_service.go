package services

import (
	"dejavu_backend/internal/models"
	"dejavu_backend/internal/repositories"
	"dejavu_backend/internal/services/dto"
	"dejavu_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PhotographerService interface {
	List(db *gorm.DB) ([]*dto.PhotographerResponse, error)
	Create(db *gorm.DB, authorUserID string, req *dto.CreatePhotographerRequest) (*dto.PhotographerResponse, error)
	Update(db *gorm.DB, authorUserID string, req *dto.UpdatePhotographerRequest) error
	Delete(db *gorm.DB, photographerID string) error

	GetProfilePicture(db *gorm.DB, userID string) (*dto.ProfilePictureResponse, error)
	UpdateProfilePicture(db *gorm.DB, userID, reference string) error
}

type photographerService struct {
	photographerRepo repositories.PhotographerRepository
	userRepo         repositories.UserRepository
	lookupRepo       repositories.LookupRepository
}

func NewPhotographerService(
	photographerRepo repositories.PhotographerRepository,
	userRepo repositories.UserRepository,
	lookupRepo repositories.LookupRepository,
) PhotographerService {
	return &photographerService{
		photographerRepo: photographerRepo,
		userRepo:         userRepo,
		lookupRepo:       lookupRepo,
	}
}

func (s *photographerService) List(db *gorm.DB) ([]*dto.PhotographerResponse, error) {
	phs, err := s.photographerRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.PhotographerResponse, 0, len(phs))
	for i := range phs {
		responses = append(responses, buildPhotographerResponse(&phs[i]))
	}
	return responses, nil
}

// Create заводит профиль фотографа. Проверки владения нет: любой
// аутентифицированный (и даже анонимный) вызов проходит. Это
// сохраненная мягкая политика, см. DESIGN.md.
func (s *photographerService) Create(db *gorm.DB, authorUserID string, req *dto.CreatePhotographerRequest) (*dto.PhotographerResponse, error) {
	ph := &models.Photographer{
		Name:                      req.Name,
		Email:                     req.Email,
		City:                      req.City,
		Instagram:                 req.Instagram,
		PricePerHour:              req.PricePerHour,
		AvailableForInternational: req.AvailableForInternational,
	}

	if authorUserID != "" {
		ph.UserID = &authorUserID
	}

	if req.Country != "" {
		country, err := s.lookupRepo.FindOrCreateCountry(db, req.Country)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		ph.CountryID = &country.ID
		ph.Country = country
	}
	if req.Niche != "" {
		niche, err := s.lookupRepo.FindOrCreateNiche(db, req.Niche)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		ph.NicheID = &niche.ID
		ph.Niche = niche
	}
	if len(req.Languages) > 0 {
		languages, err := s.lookupRepo.FindOrCreateLanguages(db, req.Languages)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		ph.Languages = languages
	}

	if err := s.photographerRepo.Create(db, ph); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildPhotographerResponse(ph), nil
}

// Update применяет частичное обновление. Разрешено только владельцу
// профиля (photographer.UserID == author).
func (s *photographerService) Update(db *gorm.DB, authorUserID string, req *dto.UpdatePhotographerRequest) error {
	ph, err := s.photographerRepo.FindByID(db, req.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPhotographerNotFound) {
			return apperrors.NewNotFoundError("photographer", "Photographer not found")
		}
		return apperrors.InternalError(err)
	}

	if ph.UserID == nil || *ph.UserID != authorUserID {
		return apperrors.NewForbiddenError("You do not have permission to edit this photographer profile")
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.Instagram != nil {
		fields["instagram"] = *req.Instagram
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour < 0 {
			return apperrors.ValidationError(map[string]string{"price_per_hour": "Must be at least 0"})
		}
		fields["price_per_hour"] = *req.PricePerHour
	}
	if req.AvailableForInternational != nil {
		fields["available_for_international"] = *req.AvailableForInternational
	}
	if req.Country != nil {
		country, err := s.lookupRepo.FindOrCreateCountry(db, *req.Country)
		if err != nil {
			return apperrors.InternalError(err)
		}
		fields["country_id"] = country.ID
	}
	if req.Niche != nil {
		niche, err := s.lookupRepo.FindOrCreateNiche(db, *req.Niche)
		if err != nil {
			return apperrors.InternalError(err)
		}
		fields["niche_id"] = niche.ID
	}

	if err := s.photographerRepo.UpdateColumns(db, ph.ID, fields); err != nil {
		return apperrors.InternalError(err)
	}

	if req.Languages != nil {
		languages, err := s.lookupRepo.FindOrCreateLanguages(db, *req.Languages)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.photographerRepo.ReplaceLanguages(db, ph, languages); err != nil {
			return apperrors.InternalError(err)
		}
	}

	return nil
}

// Delete удаляет профиль без проверки владения - сохраненная мягкая
// политика (см. DESIGN.md). Неизвестный id - чистый 404.
func (s *photographerService) Delete(db *gorm.DB, photographerID string) error {
	ph, err := s.photographerRepo.FindByID(db, photographerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPhotographerNotFound) {
			return apperrors.NewNotFoundError("photographer", "Photographer not found")
		}
		return apperrors.InternalError(err)
	}

	if err := s.photographerRepo.Delete(db, ph); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *photographerService) GetProfilePicture(db *gorm.DB, userID string) (*dto.ProfilePictureResponse, error) {
	ph, err := s.photographerRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPhotographerNotFound) {
			return nil, apperrors.NewNotFoundError("photographer", "Photographer profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfilePictureResponse{ProfilePicture: ph.ProfilePicture}, nil
}

// UpdateProfilePicture заменяет ссылку на аватар. Только для роли photographer.
func (s *photographerService) UpdateProfilePicture(db *gorm.DB, userID, reference string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user", "User not found")
		}
		return apperrors.InternalError(err)
	}

	if user.Role != models.UserRolePhotographer {
		return apperrors.NewForbiddenError("Only photographers can upload profile pictures")
	}

	ph, err := s.photographerRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPhotographerNotFound) {
			return apperrors.NewNotFoundError("photographer", "Photographer profile not found")
		}
		return apperrors.InternalError(err)
	}

	return s.photographerRepo.UpdateColumns(db, ph.ID, map[string]interface{}{
		"profile_picture": reference,
	})
}

func buildPhotographerResponse(ph *models.Photographer) *dto.PhotographerResponse {
	resp := &dto.PhotographerResponse{
		ID:                        ph.ID,
		Name:                      ph.Name,
		City:                      ph.City,
		Instagram:                 ph.Instagram,
		PricePerHour:              ph.PricePerHour,
		AvailableForInternational: ph.AvailableForInternational,
		AverageRating:             ph.AverageRating,
		ProfilePicture:            ph.ProfilePicture,
		PortfolioCover:            ph.PortfolioCover,
		Languages:                 []string{},
	}

	if ph.Country != nil {
		resp.Country = ph.Country.Name
	}
	if ph.Niche != nil {
		resp.Niche = ph.Niche.Name
	}
	for _, lang := range ph.Languages {
		resp.Languages = append(resp.Languages, lang.Name)
	}

	return resp
}
