package services

import (
	"context"

	"portfolio_backend/internal/forms"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/utils"
	"portfolio_backend/pkg/apperrors"
)

// PortfolioLinkService edits the portfolio links. Slugs are not required to be
// unique; a duplicate is logged and the first link in display order wins on
// the public side.
type PortfolioLinkService interface {
	CreateLink(ctx context.Context, form *forms.LinkForm) (*models.PortfolioLink, error)
	UpdateLink(ctx context.Context, id string, form *forms.LinkForm) (*models.PortfolioLink, error)
	PatchLink(ctx context.Context, id string, patch *models.PortfolioLinkPatch) (*models.PortfolioLink, error)
	DeleteLink(ctx context.Context, id string) error
	ToggleLink(ctx context.Context, id string) (*models.PortfolioLink, error)
	GetLink(ctx context.Context, id string) (*models.PortfolioLink, error)
	// ListLinks returns the links in display order.
	ListLinks(ctx context.Context) []models.PortfolioLink
}

type portfolioLinkService struct {
	repo    repositories.PortfolioLinkRepository
	slugger utils.Slugger
	events  EventPublisher
}

func NewPortfolioLinkService(repo repositories.PortfolioLinkRepository, slugger utils.Slugger, events EventPublisher) PortfolioLinkService {
	return &portfolioLinkService{repo: repo, slugger: slugger, events: events}
}

func (s *portfolioLinkService) CreateLink(ctx context.Context, form *forms.LinkForm) (*models.PortfolioLink, error) {
	link := s.repo.Create(form.Patch(s.slugger))

	s.warnDuplicateSlug(ctx, link)
	logger.CtxInfo(ctx, "portfolio link created", "link_id", link.ID, "slug", link.Slug)
	publish(s.events, CollectionPortfolioLinks, EventCreated, link.ID)
	return &link, nil
}

func (s *portfolioLinkService) UpdateLink(ctx context.Context, id string, form *forms.LinkForm) (*models.PortfolioLink, error) {
	patch := form.Patch(s.slugger)
	return s.PatchLink(ctx, id, &patch)
}

func (s *portfolioLinkService) PatchLink(ctx context.Context, id string, patch *models.PortfolioLinkPatch) (*models.PortfolioLink, error) {
	rederive := patch.Slug != nil && *patch.Slug == ""

	link, res := s.repo.Modify(id, func(l models.PortfolioLink) models.PortfolioLink {
		l = patch.Apply(l)
		if rederive {
			l.Slug = s.slugger.Slug(l.Title)
		}
		return l
	})
	if res == repositories.NotFound {
		return nil, apperrors.ErrPortfolioLinkNotFound
	}

	s.warnDuplicateSlug(ctx, link)
	logger.CtxInfo(ctx, "portfolio link updated", "link_id", id)
	publish(s.events, CollectionPortfolioLinks, EventUpdated, id)
	return &link, nil
}

func (s *portfolioLinkService) DeleteLink(ctx context.Context, id string) error {
	if s.repo.Delete(id) == repositories.NotFound {
		return apperrors.ErrPortfolioLinkNotFound
	}

	logger.CtxInfo(ctx, "portfolio link deleted", "link_id", id)
	publish(s.events, CollectionPortfolioLinks, EventDeleted, id)
	return nil
}

func (s *portfolioLinkService) ToggleLink(ctx context.Context, id string) (*models.PortfolioLink, error) {
	link, res := s.repo.ToggleActive(id)
	if res == repositories.NotFound {
		return nil, apperrors.ErrPortfolioLinkNotFound
	}

	logger.CtxInfo(ctx, "portfolio link toggled", "link_id", id, "is_active", link.IsActive)
	publish(s.events, CollectionPortfolioLinks, EventToggled, id)
	return &link, nil
}

func (s *portfolioLinkService) GetLink(ctx context.Context, id string) (*models.PortfolioLink, error) {
	link, res := s.repo.FindByID(id)
	if res == repositories.NotFound {
		return nil, apperrors.ErrPortfolioLinkNotFound
	}
	return &link, nil
}

func (s *portfolioLinkService) ListLinks(ctx context.Context) []models.PortfolioLink {
	return s.repo.FindOrdered()
}

func (s *portfolioLinkService) warnDuplicateSlug(ctx context.Context, link models.PortfolioLink) {
	if n := s.repo.CountBySlug(link.Slug); n > 1 {
		logger.CtxWarn(ctx, "duplicate portfolio slug, only the first link in display order is reachable",
			"slug", link.Slug, "count", n, "link_id", link.ID)
	}
}
