package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	PhotographerHandler *PhotographerHandler
	SearchHandler       *SearchHandler
	ReviewHandler       *ReviewHandler
	PortfolioHandler    *PortfolioHandler
	QuoteHandler        *QuoteHandler
	FileHandler         *FileHandler
}
