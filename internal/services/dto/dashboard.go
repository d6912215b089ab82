package dto

import "portfolio_backend/internal/models"

// DashboardOverview backs the overview section and GET /dashboard/overview.
type DashboardOverview struct {
	ProjectCount    int                    `json:"project_count"`
	FeaturedCount   int                    `json:"featured_count"`
	LinkCount       int                    `json:"link_count"`
	ActiveLinkCount int                    `json:"active_link_count"`
	PhotoCount      int                    `json:"photo_count"`
	ProfilePhoto    *models.Photo          `json:"profile_photo,omitempty"`
	Links           []models.PortfolioLink `json:"links"`
	ProfileName     string                 `json:"profile_name"`
}
