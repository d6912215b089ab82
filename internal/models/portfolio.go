package models

const (
	DefaultLinkColor = "from-gray-400 to-gray-600"
	DefaultLinkIcon  = "Briefcase"
)

// PortfolioLink is a public portfolio section reachable at /portfolio/{slug}.
// Order is a display sort key and need not be contiguous.
type PortfolioLink struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Slug        string `json:"slug" yaml:"slug" validate:"required"`
	Description string `json:"description" yaml:"description"`
	Color       string `json:"color" yaml:"color"`
	Icon        string `json:"icon" yaml:"icon"`
	IsActive    bool   `json:"is_active" yaml:"is_active"`
	Order       int    `json:"order" yaml:"order"`
}

type PortfolioLinkPatch struct {
	Title       *string `json:"title,omitempty" validate:"omitnil,min=1"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

func (l PortfolioLink) Key() string { return l.ID }

func (l PortfolioLink) WithKey(id string) PortfolioLink {
	l.ID = id
	return l
}

func (l PortfolioLink) Clone() PortfolioLink { return l }

// NewPortfolioLink returns the record a create starts from; order places the
// new link after the existing ones.
func NewPortfolioLink(existing int) PortfolioLink {
	return PortfolioLink{
		Color:    DefaultLinkColor,
		Icon:     DefaultLinkIcon,
		IsActive: true,
		Order:    existing + 1,
	}
}

func (lp PortfolioLinkPatch) Apply(l PortfolioLink) PortfolioLink {
	if lp.Title != nil {
		l.Title = *lp.Title
	}
	if lp.Slug != nil {
		l.Slug = *lp.Slug
	}
	if lp.Description != nil {
		l.Description = *lp.Description
	}
	if lp.Color != nil {
		l.Color = *lp.Color
	}
	if lp.Icon != nil {
		l.Icon = *lp.Icon
	}
	if lp.IsActive != nil {
		l.IsActive = *lp.IsActive
	}
	if lp.Order != nil {
		l.Order = *lp.Order
	}
	return l
}
