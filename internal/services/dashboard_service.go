package services

import (
	"context"

	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type DashboardService interface {
	Overview(ctx context.Context) *dto.DashboardOverview
}

type dashboardService struct {
	projects repositories.ProjectRepository
	links    repositories.PortfolioLinkRepository
	photos   repositories.PhotoRepository
	profile  repositories.ProfileRepository
}

func NewDashboardService(
	projects repositories.ProjectRepository,
	links repositories.PortfolioLinkRepository,
	photos repositories.PhotoRepository,
	profile repositories.ProfileRepository,
) DashboardService {
	return &dashboardService{
		projects: projects,
		links:    links,
		photos:   photos,
		profile:  profile,
	}
}

func (s *dashboardService) Overview(ctx context.Context) *dto.DashboardOverview {
	projects := s.projects.FindAll()
	links := s.links.FindOrdered()

	overview := &dto.DashboardOverview{
		ProjectCount: len(projects),
		LinkCount:    len(links),
		PhotoCount:   s.photos.Count(),
		Links:        links,
		ProfileName:  s.profile.Get().Name,
	}
	for _, p := range projects {
		if p.Featured {
			overview.FeaturedCount++
		}
	}
	for _, l := range links {
		if l.IsActive {
			overview.ActiveLinkCount++
		}
	}
	if photo, res := s.photos.FindProfilePhoto(); res == repositories.Found {
		overview.ProfilePhoto = &photo
	}
	return overview
}
