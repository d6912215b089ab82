package services

import (
	"context"
	"strings"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

// PortfolioService serves the public, read-only side of the portfolio.
type PortfolioService interface {
	// Resolve returns the first link in display order with this slug.
	// Unknown and inactive slugs both yield ErrPortfolioNotFound.
	Resolve(ctx context.Context, slug string) (*models.PortfolioLink, error)
	Page(ctx context.Context, slug string) (*dto.PortfolioPage, error)
	ActivePortfolios(ctx context.Context) []dto.PortfolioSummary
	ActiveSlugs(ctx context.Context) []string
}

type portfolioService struct {
	links    repositories.PortfolioLinkRepository
	projects repositories.ProjectRepository
	profile  repositories.ProfileRepository
}

func NewPortfolioService(
	links repositories.PortfolioLinkRepository,
	projects repositories.ProjectRepository,
	profile repositories.ProfileRepository,
) PortfolioService {
	return &portfolioService{
		links:    links,
		projects: projects,
		profile:  profile,
	}
}

func (s *portfolioService) Resolve(ctx context.Context, slug string) (*models.PortfolioLink, error) {
	link, res := s.links.FindBySlug(slug)
	if res == repositories.NotFound || !link.IsActive {
		return nil, apperrors.ErrPortfolioNotFound
	}
	return &link, nil
}

func (s *portfolioService) Page(ctx context.Context, slug string) (*dto.PortfolioPage, error) {
	link, err := s.Resolve(ctx, slug)
	if err != nil {
		return nil, err
	}

	profile := s.profile.Get()
	return &dto.PortfolioPage{
		Link:        *link,
		Profile:     profile,
		SocialLinks: profile.SocialLinks(),
		SkillGroups: groupSkills(profile.Skills),
		Projects:    projectsFor(link.Slug, s.projects.FindAll()),
	}, nil
}

func (s *portfolioService) ActivePortfolios(ctx context.Context) []dto.PortfolioSummary {
	out := []dto.PortfolioSummary{}
	for _, l := range s.links.FindOrdered() {
		if !l.IsActive {
			continue
		}
		out = append(out, dto.PortfolioSummary{
			Title:       l.Title,
			Slug:        l.Slug,
			Description: l.Description,
			Color:       l.Color,
			Icon:        l.Icon,
		})
	}
	return out
}

func (s *portfolioService) ActiveSlugs(ctx context.Context) []string {
	summaries := s.ActivePortfolios(ctx)
	slugs := make([]string, 0, len(summaries))
	for _, p := range summaries {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}

// projectsFor keeps featured projects and those whose category matches the
// slug once '-' and '_' are treated alike ("dev-web" matches dev_web).
func projectsFor(slug string, all []models.Project) []models.Project {
	key := normalizeCategory(slug)
	out := []models.Project{}
	for _, p := range all {
		if p.Featured || normalizeCategory(string(p.Category)) == key {
			out = append(out, p)
		}
	}
	return out
}

func normalizeCategory(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "-", "_")
}

func groupSkills(skills []models.Skill) []dto.SkillGroup {
	groups := []dto.SkillGroup{}
	index := map[string]int{}
	for _, sk := range skills {
		i, ok := index[sk.Category]
		if !ok {
			i = len(groups)
			index[sk.Category] = i
			groups = append(groups, dto.SkillGroup{Category: sk.Category})
		}
		groups[i].Skills = append(groups[i].Skills, sk)
	}
	return groups
}
