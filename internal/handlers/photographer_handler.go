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

type PhotographerHandler struct {
	*BaseHandler
	photographerService services.PhotographerService
	storage             storage.Storage
}

func NewPhotographerHandler(base *BaseHandler, photographerService services.PhotographerService, st storage.Storage) *PhotographerHandler {
	return &PhotographerHandler{
		BaseHandler:         base,
		photographerService: photographerService,
		storage:             st,
	}
}

func (h *PhotographerHandler) RegisterRoutes(r *gin.RouterGroup) {
	photographers := r.Group("/photographers")
	{
		photographers.GET("", h.List)
		photographers.POST("", middleware.AuthMiddleware(), h.Create)
		photographers.PATCH("", middleware.AuthMiddleware(), h.Update)
		photographers.DELETE("", middleware.AuthMiddleware(), h.Delete)
	}

	profpic := r.Group("/profpic")
	profpic.Use(middleware.AuthMiddleware())
	{
		profpic.GET("", h.GetProfilePicture)
		profpic.PATCH("", middleware.RoleMiddleware(models.UserRolePhotographer), h.UpdateProfilePicture)
	}
}

func (h *PhotographerHandler) List(c *gin.Context) {
	resp, err := h.photographerService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PhotographerHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePhotographerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.photographerService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PhotographerHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePhotographerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.photographerService.Update(h.GetDB(c), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Photographer updated"})
}

func (h *PhotographerHandler) Delete(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.DeletePhotographerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.photographerService.Delete(h.GetDB(c), req.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Photographer deleted"})
}

func (h *PhotographerHandler) GetProfilePicture(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.photographerService.GetProfilePicture(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProfilePicture принимает либо multipart-форму с файлом
// profile_picture, либо JSON с уже загруженной ссылкой.
func (h *PhotographerHandler) UpdateProfilePicture(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var reference string
	if isMultipart(c) {
		header, err := c.FormFile("profile_picture")
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Missing profile_picture file"))
			return
		}
		reference, err = saveImageUpload(c, h.storage, header, "profpics")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
	} else {
		var req dto.UpdateProfilePictureRequest
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
		reference = req.ProfilePicture
	}

	if err := h.photographerService.UpdateProfilePicture(h.GetDB(c), userID, reference); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfilePictureResponse{ProfilePicture: reference})
}
