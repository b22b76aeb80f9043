package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	PhotographerService PhotographerService
	ReviewService       ReviewService
	SearchService       SearchService
	PortfolioService    PortfolioService
	QuoteService        QuoteService
}
