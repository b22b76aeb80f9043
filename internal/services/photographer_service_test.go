package services

import (
	"testing"

	"dejavu_backend/internal/models"
	"dejavu_backend/internal/services/dto"
	"dejavu_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type photographerFixture struct {
	service          PhotographerService
	photographerRepo *fakePhotographerRepo
	userRepo         *fakeUserRepo
	lookupRepo       *fakeLookupRepo
}

func newPhotographerFixture(t *testing.T) *photographerFixture {
	t.Helper()
	photographerRepo := newFakePhotographerRepo()
	userRepo := newFakeUserRepo()
	lookupRepo := newFakeLookupRepo()
	return &photographerFixture{
		service:          NewPhotographerService(photographerRepo, userRepo, lookupRepo),
		photographerRepo: photographerRepo,
		userRepo:         userRepo,
		lookupRepo:       lookupRepo,
	}
}

func TestPhotographerCreate_ResolvesLookups(t *testing.T) {
	f := newPhotographerFixture(t)

	resp, err := f.service.Create(nil, "author-1", &dto.CreatePhotographerRequest{
		Name:         "Boris",
		Email:        "boris@example.com",
		Country:      "Kazakhstan",
		Niche:        "Wedding",
		Languages:    []string{"English", "Russian"},
		PricePerHour: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, "Kazakhstan", resp.Country)
	assert.Equal(t, "Wedding", resp.Niche)
	assert.ElementsMatch(t, []string{"English", "Russian"}, resp.Languages)
	assert.Equal(t, 0.0, resp.AverageRating)

	stored, err := f.photographerRepo.FindByUserID(nil, "author-1")
	require.NoError(t, err)
	assert.Equal(t, "Boris", stored.Name)
	require.NotNil(t, stored.CountryID)
	require.NotNil(t, stored.NicheID)
}

func TestPhotographerUpdate_OwnerOnly(t *testing.T) {
	f := newPhotographerFixture(t)

	owner := "owner-1"
	ph := &models.Photographer{Name: "Boris", Email: "boris@example.com", UserID: &owner, PricePerHour: 100}
	require.NoError(t, f.photographerRepo.Create(nil, ph))

	newPrice := 200
	err := f.service.Update(nil, "someone-else", &dto.UpdatePhotographerRequest{ID: ph.ID, PricePerHour: &newPrice})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	// Профиль не изменился
	stored, _ := f.photographerRepo.FindByID(nil, ph.ID)
	assert.Equal(t, 100, stored.PricePerHour)

	// Владелец проходит
	require.NoError(t, f.service.Update(nil, owner, &dto.UpdatePhotographerRequest{ID: ph.ID, PricePerHour: &newPrice}))
	stored, _ = f.photographerRepo.FindByID(nil, ph.ID)
	assert.Equal(t, 200, stored.PricePerHour)
}

func TestPhotographerUpdate_PartialLeavesOtherFields(t *testing.T) {
	f := newPhotographerFixture(t)

	owner := "owner-1"
	ph := &models.Photographer{Name: "Boris", Email: "boris@example.com", UserID: &owner, City: "Almaty", PricePerHour: 100}
	require.NoError(t, f.photographerRepo.Create(nil, ph))

	newCity := "Astana"
	require.NoError(t, f.service.Update(nil, owner, &dto.UpdatePhotographerRequest{ID: ph.ID, City: &newCity}))

	stored, _ := f.photographerRepo.FindByID(nil, ph.ID)
	assert.Equal(t, "Astana", stored.City)
	assert.Equal(t, "Boris", stored.Name)
	assert.Equal(t, 100, stored.PricePerHour)
}

func TestPhotographerUpdate_UnownedProfileForbidden(t *testing.T) {
	f := newPhotographerFixture(t)

	// UserID NULL: профиль без владельца не редактируется никем
	ph := &models.Photographer{Name: "Orphan", Email: "orphan@example.com"}
	require.NoError(t, f.photographerRepo.Create(nil, ph))

	name := "New"
	err := f.service.Update(nil, "anyone", &dto.UpdatePhotographerRequest{ID: ph.ID, Name: &name})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestPhotographerUpdate_UnknownID(t *testing.T) {
	f := newPhotographerFixture(t)

	name := "New"
	err := f.service.Update(nil, "anyone", &dto.UpdatePhotographerRequest{ID: "missing", Name: &name})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestPhotographerDelete_NoOwnershipCheck(t *testing.T) {
	f := newPhotographerFixture(t)

	owner := "owner-1"
	ph := &models.Photographer{Name: "Boris", Email: "boris@example.com", UserID: &owner}
	require.NoError(t, f.photographerRepo.Create(nil, ph))

	// Удаляет кто угодно - мягкая политика сохранена
	require.NoError(t, f.service.Delete(nil, ph.ID))

	_, err := f.photographerRepo.FindByID(nil, ph.ID)
	assert.Error(t, err)
}

func TestPhotographerDelete_UnknownID(t *testing.T) {
	f := newPhotographerFixture(t)

	err := f.service.Delete(nil, "missing")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestProfilePicture_RoleGate(t *testing.T) {
	f := newPhotographerFixture(t)

	clientUser := &models.User{Email: "client@example.com", PasswordHash: "x", Name: "C", Role: models.UserRoleClient}
	require.NoError(t, f.userRepo.Create(nil, clientUser))

	err := f.service.UpdateProfilePicture(nil, clientUser.ID, "profpics/a.jpg")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestProfilePicture_RoundTrip(t *testing.T) {
	f := newPhotographerFixture(t)

	phUser := &models.User{Email: "ph@example.com", PasswordHash: "x", Name: "P", Role: models.UserRolePhotographer}
	require.NoError(t, f.userRepo.Create(nil, phUser))
	ph := &models.Photographer{Name: "P", Email: "ph@example.com", UserID: &phUser.ID}
	require.NoError(t, f.photographerRepo.Create(nil, ph))

	require.NoError(t, f.service.UpdateProfilePicture(nil, phUser.ID, "profpics/a.jpg"))

	resp, err := f.service.GetProfilePicture(nil, phUser.ID)
	require.NoError(t, err)
	assert.Equal(t, "profpics/a.jpg", resp.ProfilePicture)
}

func TestProfilePicture_NoProfile(t *testing.T) {
	f := newPhotographerFixture(t)

	resp, err := f.service.GetProfilePicture(nil, "nobody")
	assert.Nil(t, resp)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
