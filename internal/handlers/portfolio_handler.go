package handlers

import (
	"net/http"

	"dejavu_backend/internal/middleware"
	"dejavu_backend/internal/models"
	"dejavu_backend/internal/services"
	"dejavu_backend/internal/services/dto"
	"dejavu_backend/internal/storage"
	"dejavu_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
	storage          storage.Storage
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService, st storage.Storage) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
		storage:          st,
	}
}

func (h *PortfolioHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/addportfolio",
		middleware.AuthMiddleware(),
		middleware.RoleMiddleware(models.UserRolePhotographer),
		h.AddPhoto,
	)
	r.GET("/portfolio", h.ListByPhotographer)
}

// AddPhoto принимает либо multipart-форму (файл image + description),
// либо JSON с уже загруженной ссылкой.
func (h *PortfolioHandler) AddPhoto(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddPortfolioPhotoRequest
	if isMultipart(c) {
		header, err := c.FormFile("image")
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Missing image file"))
			return
		}
		reference, err := saveImageUpload(c, h.storage, header, "portfolio")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		req.Image = reference
		req.Description = c.PostForm("description")
	} else {
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
	}

	resp, err := h.portfolioService.AddPhoto(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PortfolioHandler) ListByPhotographer(c *gin.Context) {
	photographerID := c.Query("photographer")
	if photographerID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required query parameter: photographer"))
		return
	}

	resp, err := h.portfolioService.GetPhotographerPhotos(h.GetDB(c), photographerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
