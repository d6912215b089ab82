package dto

import (
	"strings"

	"portfolio_backend/internal/models"
)

// ProjectRequest is the JSON body of POST and PUT /projects. Unlike the HTML
// form it takes technologies as an array.
type ProjectRequest struct {
	Title        string                 `json:"title" validate:"required"`
	Description  string                 `json:"description"`
	Category     models.ProjectCategory `json:"category" validate:"omitempty,is-project-category"`
	GithubURL    string                 `json:"github_url"`
	LiveURL      string                 `json:"live_url"`
	Technologies []string               `json:"technologies"`
	Image        string                 `json:"image"`
	Featured     *bool                  `json:"featured,omitempty"`
}

func (r ProjectRequest) Patch() models.ProjectPatch {
	category := r.Category
	if category == "" {
		category = models.ProjectCategoryDevWeb
	}
	techs := []string{}
	for _, t := range r.Technologies {
		if t = strings.TrimSpace(t); t != "" {
			techs = append(techs, t)
		}
	}
	return models.ProjectPatch{
		Title:        &r.Title,
		Description:  &r.Description,
		Category:     &category,
		GithubURL:    &r.GithubURL,
		LiveURL:      &r.LiveURL,
		Technologies: techs,
		Image:        &r.Image,
		Featured:     r.Featured,
	}
}
