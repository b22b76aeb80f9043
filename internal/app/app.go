package app

import (
	"fmt"
	"time"

	"dejavu_backend/database"
	"dejavu_backend/internal/auth"
	"dejavu_backend/internal/config"
	"dejavu_backend/internal/handlers"
	"dejavu_backend/internal/logger"
	"dejavu_backend/internal/middleware"
	"dejavu_backend/internal/repositories"
	"dejavu_backend/internal/routes"
	"dejavu_backend/internal/services"
	"dejavu_backend/internal/storage"
	"dejavu_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полностью готовый движок. Вынесен отдельно,
// чтобы тесты могли поднять роутер без реального сервера.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTL)

	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)
	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	clientRepo := repositories.NewClientRepository()
	photographerRepo := repositories.NewPhotographerRepository()
	reviewRepo := repositories.NewReviewRepository()
	portfolioRepo := repositories.NewPortfolioRepository()
	lookupRepo := repositories.NewLookupRepository()

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, clientRepo, refreshTokenRepo),
		UserService:         services.NewUserService(userRepo),
		PhotographerService: services.NewPhotographerService(photographerRepo, userRepo, lookupRepo),
		ReviewService:       services.NewReviewService(reviewRepo, userRepo, clientRepo, photographerRepo),
		SearchService:       services.NewSearchService(photographerRepo),
		PortfolioService:    services.NewPortfolioService(portfolioRepo, userRepo, photographerRepo),
		QuoteService:        services.NewQuoteService(cfg.Quotes.BaseURL, time.Duration(cfg.Quotes.TimeoutSeconds)*time.Second),
	}
}

func initializeHandlers(sc *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, sc.AuthService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, sc.UserService),
		PhotographerHandler: handlers.NewPhotographerHandler(baseHandler, sc.PhotographerService, storageInstance),
		SearchHandler:       handlers.NewSearchHandler(baseHandler, sc.SearchService),
		ReviewHandler:       handlers.NewReviewHandler(baseHandler, sc.ReviewService),
		PortfolioHandler:    handlers.NewPortfolioHandler(baseHandler, sc.PortfolioService, storageInstance),
		QuoteHandler:        handlers.NewQuoteHandler(baseHandler, sc.QuoteService),
		FileHandler:         handlers.NewFileHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
