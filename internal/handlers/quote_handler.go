package handlers

import (
	"net/http"

	"dejavu_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	*BaseHandler
	quoteService services.QuoteService
}

func NewQuoteHandler(base *BaseHandler, quoteService services.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler:  base,
		quoteService: quoteService,
	}
}

func (h *QuoteHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/quotes", h.Random)
}

func (h *QuoteHandler) Random(c *gin.Context) {
	resp, err := h.quoteService.Random(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
