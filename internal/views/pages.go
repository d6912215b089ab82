package views

import (
	"portfolio_backend/internal/forms"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services/dto"
)

const (
	LandingTemplate   = "landing.html"
	DashboardTemplate = "dashboard.html"
	PortfolioTemplate = "portfolio.html"
	NotFoundTemplate  = "not_found.html"
)

type SectionTab struct {
	Section models.DashboardSection
	Label   string
	URL     string
	Active  bool
}

type LandingPage struct {
	Portfolios []dto.PortfolioSummary
}

// DashboardPage is the data behind every dashboard section. Only the fields
// of the active section are filled.
type DashboardPage struct {
	State DashboardState
	Tabs  []SectionTab

	Overview *dto.DashboardOverview

	Profile     models.Profile
	ProfileForm forms.ProfileForm

	Projects    []models.Project
	ProjectForm forms.ProjectForm
	Categories  []struct {
		Value models.ProjectCategory
		Label string
	}

	Links      []models.PortfolioLink
	LinkForm   forms.LinkForm
	LinkColors []struct {
		Value string
		Label string
	}

	Photos          []models.Photo
	DefaultPhotoURL string

	// Errors holds field messages when a submitted form failed validation.
	Errors map[string]string
}

func NewDashboardPage(state DashboardState) *DashboardPage {
	tabs := make([]SectionTab, 0, len(models.DashboardSections))
	for _, s := range models.DashboardSections {
		tabs = append(tabs, SectionTab{
			Section: s,
			Label:   s.Label(),
			URL:     state.SectionURL(s),
			Active:  s == state.Section,
		})
	}
	return &DashboardPage{
		State:           state,
		Tabs:            tabs,
		Categories:      models.ProjectCategories,
		LinkColors:      forms.LinkColors,
		DefaultPhotoURL: forms.DefaultPhotoURL,
	}
}

type PortfolioView struct {
	Page    *dto.PortfolioPage
	Contact dto.ContactRequest
	Sent    bool
	Errors  map[string]string
}

// NotFoundPage is also used for other error statuses; Status defaults to 404.
type NotFoundPage struct {
	Status  int
	Title   string
	Message string
}
