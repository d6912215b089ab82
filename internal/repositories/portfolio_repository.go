package repositories

import (
	"sort"

	"portfolio_backend/internal/models"
)

type PortfolioLinkRepository interface {
	Create(patch models.PortfolioLinkPatch) models.PortfolioLink
	Update(id string, patch models.PortfolioLinkPatch) (models.PortfolioLink, Result)
	// Modify replaces the link by fn(link) under a single write.
	Modify(id string, fn func(models.PortfolioLink) models.PortfolioLink) (models.PortfolioLink, Result)
	Delete(id string) Result
	ToggleActive(id string) (models.PortfolioLink, Result)
	FindByID(id string) (models.PortfolioLink, Result)
	// FindOrdered returns links sorted by Order ascending; ties keep creation order.
	FindOrdered() []models.PortfolioLink
	// FindBySlug returns the first link in display order carrying slug,
	// active or not.
	FindBySlug(slug string) (models.PortfolioLink, Result)
	CountBySlug(slug string) int
	Count() int
	Seed(links []models.PortfolioLink)
}

type PortfolioLinkRepositoryImpl struct {
	links *Collection[models.PortfolioLink]
}

func NewPortfolioLinkRepository(ids IDGenerator) PortfolioLinkRepository {
	return &PortfolioLinkRepositoryImpl{
		links: NewCollection(ids, models.NewPortfolioLink),
	}
}

func (r *PortfolioLinkRepositoryImpl) Create(patch models.PortfolioLinkPatch) models.PortfolioLink {
	return r.links.Create(patch)
}

func (r *PortfolioLinkRepositoryImpl) Update(id string, patch models.PortfolioLinkPatch) (models.PortfolioLink, Result) {
	return r.links.Update(id, patch)
}

func (r *PortfolioLinkRepositoryImpl) Modify(id string, fn func(models.PortfolioLink) models.PortfolioLink) (models.PortfolioLink, Result) {
	return r.links.Modify(id, fn)
}

func (r *PortfolioLinkRepositoryImpl) Delete(id string) Result {
	return r.links.Delete(id)
}

func (r *PortfolioLinkRepositoryImpl) ToggleActive(id string) (models.PortfolioLink, Result) {
	return r.links.Modify(id, func(l models.PortfolioLink) models.PortfolioLink {
		l.IsActive = !l.IsActive
		return l
	})
}

func (r *PortfolioLinkRepositoryImpl) FindByID(id string) (models.PortfolioLink, Result) {
	return r.links.Get(id)
}

func (r *PortfolioLinkRepositoryImpl) FindOrdered() []models.PortfolioLink {
	links := r.links.List()
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Order < links[j].Order
	})
	return links
}

func (r *PortfolioLinkRepositoryImpl) FindBySlug(slug string) (models.PortfolioLink, Result) {
	for _, l := range r.FindOrdered() {
		if l.Slug == slug {
			return l, Found
		}
	}
	return models.PortfolioLink{}, NotFound
}

func (r *PortfolioLinkRepositoryImpl) CountBySlug(slug string) int {
	n := 0
	for _, l := range r.links.List() {
		if l.Slug == slug {
			n++
		}
	}
	return n
}

func (r *PortfolioLinkRepositoryImpl) Count() int {
	return r.links.Len()
}

func (r *PortfolioLinkRepositoryImpl) Seed(links []models.PortfolioLink) {
	r.links.Reset(links)
}
