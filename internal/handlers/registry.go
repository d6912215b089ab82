package handlers

import "portfolio_backend/internal/services"

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	ProjectHandler       *ProjectHandler
	PortfolioLinkHandler *PortfolioLinkHandler
	PhotoHandler         *PhotoHandler
	ProfileHandler       *ProfileHandler
	PortfolioHandler     *PortfolioHandler
	DashboardHandler     *DashboardHandler
}

func NewAppHandlers(base *BaseHandler, c *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		ProjectHandler:       NewProjectHandler(base, c.ProjectService),
		PortfolioLinkHandler: NewPortfolioLinkHandler(base, c.PortfolioLinkService),
		PhotoHandler:         NewPhotoHandler(base, c.PhotoService),
		ProfileHandler:       NewProfileHandler(base, c.ProfileService),
		PortfolioHandler:     NewPortfolioHandler(base, c.PortfolioService, c.ContactService),
		DashboardHandler:     NewDashboardHandler(base, c),
	}
}
