package handlers

import (
	"net/http"
	"strconv"

	"dejavu_backend/internal/models"
	"dejavu_backend/internal/services"
	"dejavu_backend/internal/services/dto"
	"dejavu_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/phsearch", h.Search)
	r.GET("/newph", h.ListSorted)
}

func (h *SearchHandler) Search(c *gin.Context) {
	var query dto.SearchPhotographersQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	criteria := models.SearchPhotographersCriteria{
		Niche:     query.Niche,
		Languages: query.Languages,
	}

	// Нечисловой max_price - это 400, а не пустая выдача
	if query.MaxPrice != "" {
		maxPrice, err := strconv.Atoi(query.MaxPrice)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid max_price: must be an integer"))
			return
		}
		criteria.MaxPrice = &maxPrice
	}

	resp, err := h.searchService.SearchPhotographers(h.GetDB(c), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) ListSorted(c *gin.Context) {
	var query dto.ListPhotographersQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.searchService.ListPhotographers(h.GetDB(c), query.Sorting)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
