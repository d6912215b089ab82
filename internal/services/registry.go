package services

import (
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/utils"
)

// Repositories groups the in-memory stores shared by the services.
type Repositories struct {
	Projects repositories.ProjectRepository
	Links    repositories.PortfolioLinkRepository
	Photos   repositories.PhotoRepository
	Profile  repositories.ProfileRepository
}

// ServiceContainer holds every application service.
type ServiceContainer struct {
	ProjectService       ProjectService
	PortfolioLinkService PortfolioLinkService
	PhotoService         PhotoService
	ProfileService       ProfileService
	PortfolioService     PortfolioService
	DashboardService     DashboardService
	ContactService       ContactService
	EmailProvider        email.Provider
}

func NewServiceContainer(repos Repositories, slugger utils.Slugger, provider email.Provider, events EventPublisher) *ServiceContainer {
	if events == nil {
		events = NopPublisher
	}

	portfolio := NewPortfolioService(repos.Links, repos.Projects, repos.Profile)

	return &ServiceContainer{
		ProjectService:       NewProjectService(repos.Projects, events),
		PortfolioLinkService: NewPortfolioLinkService(repos.Links, slugger, events),
		PhotoService:         NewPhotoService(repos.Photos, events),
		ProfileService:       NewProfileService(repos.Profile, events),
		PortfolioService:     portfolio,
		DashboardService:     NewDashboardService(repos.Projects, repos.Links, repos.Photos, repos.Profile),
		ContactService:       NewContactService(portfolio, repos.Profile, provider),
		EmailProvider:        provider,
	}
}
