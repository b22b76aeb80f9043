package handlers

import (
	"net/http"

	"dejavu_backend/internal/middleware"
	"dejavu_backend/internal/models"
	"dejavu_backend/internal/services"
	"dejavu_backend/internal/services/dto"
	"dejavu_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/reviews", h.ListByPhotographer)
	r.POST("/reviews", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleClient), h.Create)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.reviewService.CreateReview(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ReviewHandler) ListByPhotographer(c *gin.Context) {
	photographerID := c.Query("photographer")
	if photographerID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required query parameter: photographer"))
		return
	}

	resp, err := h.reviewService.GetPhotographerReviews(h.GetDB(c), photographerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
