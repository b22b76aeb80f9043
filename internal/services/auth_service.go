package services

import (
	"time"

	"dejavu_backend/internal/auth"
	"dejavu_backend/internal/models"
	"dejavu_backend/internal/repositories"
	"dejavu_backend/internal/services/dto"
	"dejavu_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserInfo, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
}

type authService struct {
	userRepo         repositories.UserRepository
	clientRepo       repositories.ClientRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	clientRepo repositories.ClientRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		clientRepo:       clientRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Register создает учетную запись. Дубликат email - ошибка валидации,
// первая учетная запись при этом не затрагивается.
func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserInfo, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         models.UserRole(req.Role),
		IsActive:     true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrEmailAlreadyTaken) {
			return nil, apperrors.NewAlreadyExistsError("user", "Email already registered")
		}
		return nil, apperrors.InternalError(err)
	}

	// Клиенту сразу заводим профиль: отзывы пишутся от имени Client.
	// Фотограф создает свой профиль отдельным запросом.
	if user.Role == models.UserRoleClient {
		client := &models.Client{
			UserID: &user.ID,
			Name:   user.Name,
		}
		if err := s.clientRepo.Create(db, client); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return buildUserInfo(user), nil
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 400)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 400)
	}

	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("Account is deactivated")
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     newRefreshTokenValue(),
		ExpiresAt: time.Now().Add(refreshTokenTTL).Unix(),
	}
	if err := s.refreshTokenRepo.Create(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         buildUserInfo(user),
	}, nil
}

// Logout удаляет refresh-токен; access-токен доживает свой TTL.
func (s *authService) Logout(db *gorm.DB, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func newRefreshTokenValue() string {
	return uuid.NewString()
}

func buildUserInfo(user *models.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     string(user.Role),
		IsActive: user.IsActive,
		IsStaff:  user.IsStaff,
	}
}
