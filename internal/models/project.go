package models

// Project is a portfolio project shown on the dashboard and on public pages.
type Project struct {
	ID           string          `json:"id" yaml:"id"`
	Title        string          `json:"title" yaml:"title" validate:"required"`
	Description  string          `json:"description" yaml:"description"`
	Category     ProjectCategory `json:"category" yaml:"category" validate:"required,is-project-category"`
	GithubURL    string          `json:"github_url" yaml:"github_url"`
	LiveURL      string          `json:"live_url" yaml:"live_url"`
	Technologies []string        `json:"technologies" yaml:"technologies"`
	Image        string          `json:"image" yaml:"image"`
	Featured     bool            `json:"featured" yaml:"featured"`
}

// ProjectPatch carries a partial update. Nil fields are left untouched.
type ProjectPatch struct {
	Title        *string          `json:"title,omitempty" validate:"omitnil,min=1"`
	Description  *string          `json:"description,omitempty"`
	Category     *ProjectCategory `json:"category,omitempty" validate:"omitempty,is-project-category"`
	GithubURL    *string          `json:"github_url,omitempty"`
	LiveURL      *string          `json:"live_url,omitempty"`
	Technologies []string         `json:"technologies,omitempty"`
	Image        *string          `json:"image,omitempty"`
	Featured     *bool            `json:"featured,omitempty"`
}

func (p Project) Key() string { return p.ID }

func (p Project) WithKey(id string) Project {
	p.ID = id
	return p
}

// Clone copies the technology list so the stored record is never aliased.
func (p Project) Clone() Project {
	p.Technologies = append([]string{}, p.Technologies...)
	return p
}

// NewProject returns the record a create starts from.
func NewProject() Project {
	return Project{
		Category:     ProjectCategoryDevWeb,
		Technologies: []string{},
	}
}

func (pp ProjectPatch) Apply(p Project) Project {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.GithubURL != nil {
		p.GithubURL = *pp.GithubURL
	}
	if pp.LiveURL != nil {
		p.LiveURL = *pp.LiveURL
	}
	if pp.Technologies != nil {
		p.Technologies = append([]string{}, pp.Technologies...)
	}
	if pp.Image != nil {
		p.Image = *pp.Image
	}
	if pp.Featured != nil {
		p.Featured = *pp.Featured
	}
	return p
}
