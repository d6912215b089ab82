package handlers

import (
	"net/http"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/profile", h.GetProfile)
	r.PUT("/profile", h.ReplaceProfile)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.profileService.GetProfile(c.Request.Context()))
}

// ReplaceProfile stores the full document, nested lists included. Entries
// without an id get one.
func (h *ProfileHandler) ReplaceProfile(c *gin.Context) {
	var profile models.Profile
	if !h.BindAndValidate_JSON(c, &profile) {
		return
	}
	c.JSON(http.StatusOK, h.profileService.ReplaceProfile(c.Request.Context(), profile))
}
