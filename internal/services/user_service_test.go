package services

import (
	"testing"

	"dejavu_backend/internal/models"
	"dejavu_backend/internal/services/dto"
	"dejavu_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user := &models.User{Email: "aru@example.com", PasswordHash: "x", Name: "Aru", Role: models.UserRoleClient, IsActive: true}
	require.NoError(t, userRepo.Create(nil, user))

	resp, err := svc.GetProfile(nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aru", resp.Name)
	assert.Equal(t, "client", resp.Role)

	_, err = svc.GetProfile(nil, "missing")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user := &models.User{Email: "aru@example.com", PasswordHash: "x", Name: "Aru", Role: models.UserRoleClient, IsActive: true}
	require.NoError(t, userRepo.Create(nil, user))

	newName := "Arukhan"
	resp, err := svc.UpdateProfile(nil, user.ID, &dto.UpdateProfileRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Arukhan", resp.Name)
	// Email не передан - не изменился
	assert.Equal(t, "aru@example.com", resp.Email)
}

func TestUpdateProfile_EmailConflict(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	first := &models.User{Email: "first@example.com", PasswordHash: "x", Name: "First", Role: models.UserRoleClient}
	second := &models.User{Email: "second@example.com", PasswordHash: "x", Name: "Second", Role: models.UserRoleClient}
	require.NoError(t, userRepo.Create(nil, first))
	require.NoError(t, userRepo.Create(nil, second))

	taken := "first@example.com"
	_, err := svc.UpdateProfile(nil, second.ID, &dto.UpdateProfileRequest{Email: &taken})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)

	// Передача собственного email не считается конфликтом
	own := "second@example.com"
	_, err = svc.UpdateProfile(nil, second.ID, &dto.UpdateProfileRequest{Email: &own})
	assert.NoError(t, err)
}
