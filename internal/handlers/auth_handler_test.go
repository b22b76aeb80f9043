package handlers

import (
	"net/http"
	"testing"

	"dejavu_backend/internal/auth"
	"dejavu_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *fakeAuthService) *gin.Engine {
	auth.Configure("test-secret", 60)
	handler := NewAuthHandler(newTestBase(), svc)
	return newTestRouter(func(r *gin.RouterGroup) { handler.RegisterRoutes(r) })
}

func TestRegister_InvalidBodyNeverHitsService(t *testing.T) {
	svc := &fakeAuthService{}
	router := newAuthRouter(svc)

	cases := []map[string]interface{}{
		{"name": "A", "email": "not-an-email", "password": "secret1", "role": "client"},
		{"name": "A", "email": "a@example.com", "password": "12345", "role": "client"},
		{"name": "A", "email": "a@example.com", "password": "secret1", "role": "admin"},
	}
	for _, body := range cases {
		rec := doJSON(t, router, http.MethodPost, "/register", "", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.False(t, svc.registerCalled)
}

func TestRegister_Created(t *testing.T) {
	svc := &fakeAuthService{}
	router := newAuthRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/register", "", map[string]interface{}{
		"name": "Aru", "email": "aru@example.com", "password": "secret1", "role": "client",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var info dto.UserInfo
	decodeBody(t, rec, &info)
	assert.Equal(t, "aru@example.com", info.Email)
}

func TestLogin_ReturnsTokens(t *testing.T) {
	svc := &fakeAuthService{loginResp: &dto.LoginResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         &dto.UserInfo{ID: "u-1", Email: "aru@example.com"},
	}}
	router := newAuthRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/auth", "", map[string]interface{}{
		"email": "aru@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LoginResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "access", resp.AccessToken)
	assert.Equal(t, "refresh", resp.RefreshToken)
}

func TestLogout_RequiresToken(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{})

	rec := doJSON(t, router, http.MethodGet, "/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_PassesRefreshToken(t *testing.T) {
	svc := &fakeAuthService{}
	router := newAuthRouter(svc)

	token, err := auth.GenerateToken("u-1", "client")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/logout?refresh_token=rt-1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"rt-1"}, svc.loggedOut)
}
