// Package forms holds the drafts bound to the dashboard's create and edit
// forms. A draft is seeded from an existing record (edit) or from defaults
// (create), and is turned into a normalized patch on submit.
package forms

import (
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/utils"
)

const DefaultFormLinkColor = "from-blue-400 to-blue-600"

// DefaultPhotoURL prefills the gallery's add form.
const DefaultPhotoURL = "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=400"

// LinkColors are the gradient choices offered by the link form.
var LinkColors = []struct {
	Value string
	Label string
}{
	{"from-blue-400 to-blue-600", "Bleu"},
	{"from-purple-400 to-purple-600", "Violet"},
	{"from-red-400 to-red-600", "Rouge"},
	{"from-green-400 to-green-600", "Vert"},
	{"from-yellow-400 to-yellow-600", "Jaune"},
	{"from-pink-400 to-pink-600", "Rose"},
	{"from-indigo-400 to-indigo-600", "Indigo"},
	{"from-teal-400 to-teal-600", "Teal"},
}

// ============================================================================
// Projects
// ============================================================================

type ProjectForm struct {
	Title        string                 `json:"title" form:"title" validate:"required"`
	Description  string                 `json:"description" form:"description"`
	Category     models.ProjectCategory `json:"category" form:"category" validate:"required,is-project-category"`
	GithubURL    string                 `json:"github_url" form:"github_url"`
	LiveURL      string                 `json:"live_url" form:"live_url"`
	Technologies string                 `json:"technologies" form:"technologies"`
	Image        string                 `json:"image" form:"image"`
	// Featured is optional: when absent the stored value is kept.
	Featured *bool `json:"featured,omitempty" form:"featured"`
}

// NewProjectForm seeds a draft from p, or from create defaults when p is nil.
func NewProjectForm(p *models.Project) ProjectForm {
	if p == nil {
		return ProjectForm{Category: models.ProjectCategoryDevWeb}
	}
	featured := p.Featured
	return ProjectForm{
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		Technologies: utils.JoinTechnologies(p.Technologies),
		Image:        p.Image,
		Featured:     &featured,
	}
}

func (f ProjectForm) Patch() models.ProjectPatch {
	category := f.Category
	if category == "" {
		category = models.ProjectCategoryDevWeb
	}
	return models.ProjectPatch{
		Title:        ptr(f.Title),
		Description:  ptr(f.Description),
		Category:     &category,
		GithubURL:    ptr(f.GithubURL),
		LiveURL:      ptr(f.LiveURL),
		Technologies: utils.SplitTechnologies(f.Technologies),
		Image:        ptr(f.Image),
		Featured:     f.Featured,
	}
}

// ============================================================================
// Portfolio links
// ============================================================================

type LinkForm struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Slug        string `json:"slug" form:"slug"`
	Description string `json:"description" form:"description"`
	Color       string `json:"color" form:"color"`
	Icon        string `json:"icon" form:"icon"`
	Order       *int   `json:"order,omitempty" form:"order"`
}

func NewLinkForm(l *models.PortfolioLink) LinkForm {
	if l == nil {
		return LinkForm{Color: DefaultFormLinkColor, Icon: models.DefaultLinkIcon}
	}
	order := l.Order
	return LinkForm{
		Title:       l.Title,
		Slug:        l.Slug,
		Description: l.Description,
		Color:       l.Color,
		Icon:        l.Icon,
		Order:       &order,
	}
}

// Patch derives the slug from the title when none was entered. Collisions
// with other links are not checked.
func (f LinkForm) Patch(slugger utils.Slugger) models.PortfolioLinkPatch {
	slug := f.Slug
	if slug == "" {
		slug = slugger.Slug(f.Title)
	}
	patch := models.PortfolioLinkPatch{
		Title:       ptr(f.Title),
		Slug:        &slug,
		Description: ptr(f.Description),
		Order:       f.Order,
	}
	if f.Color != "" {
		patch.Color = ptr(f.Color)
	}
	if f.Icon != "" {
		patch.Icon = ptr(f.Icon)
	}
	return patch
}

// ============================================================================
// Photos
// ============================================================================

type PhotoForm struct {
	URL  string `json:"url" form:"url" validate:"required"`
	Name string `json:"name" form:"name"`
}

func (f PhotoForm) Patch() models.PhotoPatch {
	patch := models.PhotoPatch{URL: ptr(f.URL)}
	if f.Name != "" {
		patch.Name = ptr(f.Name)
	}
	return patch
}

// ============================================================================
// Profile
// ============================================================================

// ProfileForm covers the scalar fields of the profile editor. Nested lists are
// edited through the JSON API.
type ProfileForm struct {
	Name         string `json:"name" form:"name" validate:"required"`
	Title        string `json:"title" form:"title"`
	Bio          string `json:"bio" form:"bio"`
	Location     string `json:"location" form:"location"`
	Email        string `json:"email" form:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" form:"phone"`
	Website      string `json:"website" form:"website"`
	Github       string `json:"github" form:"github"`
	Linkedin     string `json:"linkedin" form:"linkedin"`
	Twitter      string `json:"twitter" form:"twitter"`
	Instagram    string `json:"instagram" form:"instagram"`
	ProfileImage string `json:"profile_image" form:"profile_image"`
}

func NewProfileForm(p models.Profile) ProfileForm {
	return ProfileForm{
		Name:         p.Name,
		Title:        p.Title,
		Bio:          p.Bio,
		Location:     p.Location,
		Email:        p.Email,
		Phone:        p.Phone,
		Website:      p.Website,
		Github:       p.Github,
		Linkedin:     p.Linkedin,
		Twitter:      p.Twitter,
		Instagram:    p.Instagram,
		ProfileImage: p.ProfileImage,
	}
}

func (f ProfileForm) Patch() models.ProfilePatch {
	return models.ProfilePatch{
		Name:         ptr(f.Name),
		Title:        ptr(f.Title),
		Bio:          ptr(f.Bio),
		Location:     ptr(f.Location),
		Email:        ptr(f.Email),
		Phone:        ptr(f.Phone),
		Website:      ptr(f.Website),
		Github:       ptr(f.Github),
		Linkedin:     ptr(f.Linkedin),
		Twitter:      ptr(f.Twitter),
		Instagram:    ptr(f.Instagram),
		ProfileImage: ptr(f.ProfileImage),
	}
}

func ptr[T any](v T) *T {
	return &v
}
