package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"dejavu_backend/internal/models"
	"dejavu_backend/internal/services/dto"
	"dejavu_backend/internal/validator"

	"dejavu_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Роутер в тестовом режиме с теми же middleware, что и в приложении.
// БД нет: фейковые сервисы игнорируют *gorm.DB.
func newTestRouter(register func(r *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.DBMiddleware(nil))
	register(&router.RouterGroup)
	return router
}

func newTestBase() *BaseHandler {
	return NewBaseHandler(validator.New())
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// --- фейковые сервисы ---

type fakeSearchService struct {
	lastCriteria models.SearchPhotographersCriteria
	lastSorting  string
	result       []*dto.PhotographerResponse
	err          error
}

func (s *fakeSearchService) SearchPhotographers(db *gorm.DB, criteria models.SearchPhotographersCriteria) ([]*dto.PhotographerResponse, error) {
	s.lastCriteria = criteria
	return s.result, s.err
}

func (s *fakeSearchService) ListPhotographers(db *gorm.DB, sorting string) ([]*dto.PhotographerResponse, error) {
	s.lastSorting = sorting
	return s.result, s.err
}

type fakeReviewService struct {
	lastAuthor string
	lastReq    *dto.CreateReviewRequest
	resp       *dto.ReviewResponse
	err        error
}

func (s *fakeReviewService) CreateReview(db *gorm.DB, authorUserID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	s.lastAuthor = authorUserID
	s.lastReq = req
	return s.resp, s.err
}

func (s *fakeReviewService) GetPhotographerReviews(db *gorm.DB, photographerID string) ([]*dto.ReviewResponse, error) {
	return nil, s.err
}

type fakeAuthService struct {
	registerCalled bool
	loginResp      *dto.LoginResponse
	loggedOut      []string
	err            error
}

func (s *fakeAuthService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserInfo, error) {
	s.registerCalled = true
	if s.err != nil {
		return nil, s.err
	}
	return &dto.UserInfo{ID: "u-1", Name: req.Name, Email: req.Email, Role: req.Role, IsActive: true}, nil
}

func (s *fakeAuthService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.loginResp, nil
}

func (s *fakeAuthService) Logout(db *gorm.DB, refreshToken string) error {
	s.loggedOut = append(s.loggedOut, refreshToken)
	return s.err
}

type fakeQuoteService struct {
	resp *dto.QuoteResponse
	err  error
}

func (s *fakeQuoteService) Random(ctx context.Context) (*dto.QuoteResponse, error) {
	return s.resp, s.err
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
