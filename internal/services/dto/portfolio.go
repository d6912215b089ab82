package dto

import "portfolio_backend/internal/models"

// SkillGroup is a skill category with its skills, in first-seen order.
type SkillGroup struct {
	Category string         `json:"category"`
	Skills   []models.Skill `json:"skills"`
}

// PortfolioPage is everything the public page for one link renders.
type PortfolioPage struct {
	Link        models.PortfolioLink `json:"link"`
	Profile     models.Profile       `json:"profile"`
	SocialLinks []models.SocialLink  `json:"social_links"`
	SkillGroups []SkillGroup         `json:"skill_groups"`
	Projects    []models.Project     `json:"projects"`
}

// PortfolioSummary is a link as listed on the landing page.
type PortfolioSummary struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}
