package routes

import (
	"dejavu_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты. Пути живут в корне,
// без версионного префикса: клиенты ходят на /auth, /photographers и т.д.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := &ginRouter.RouterGroup

	appHandlers.AuthHandler.RegisterRoutes(root)
	appHandlers.ProfileHandler.RegisterRoutes(root)
	appHandlers.PhotographerHandler.RegisterRoutes(root)
	appHandlers.SearchHandler.RegisterRoutes(root)
	appHandlers.ReviewHandler.RegisterRoutes(root)
	appHandlers.PortfolioHandler.RegisterRoutes(root)
	appHandlers.QuoteHandler.RegisterRoutes(root)
	appHandlers.FileHandler.RegisterRoutes(root)
}
