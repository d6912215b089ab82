package handlers

import (
	"net/http"

	"portfolio_backend/internal/forms"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PortfolioLinkHandler struct {
	*BaseHandler
	linkService services.PortfolioLinkService
}

func NewPortfolioLinkHandler(base *BaseHandler, linkService services.PortfolioLinkService) *PortfolioLinkHandler {
	return &PortfolioLinkHandler{
		BaseHandler: base,
		linkService: linkService,
	}
}

func (h *PortfolioLinkHandler) RegisterRoutes(r *gin.RouterGroup) {
	links := r.Group("/portfolio-links")
	{
		links.GET("", h.ListLinks)
		links.POST("", h.CreateLink)
		links.GET("/:id", h.GetLink)
		links.PUT("/:id", h.ReplaceLink)
		links.PATCH("/:id", h.PatchLink)
		links.DELETE("/:id", h.DeleteLink)
		links.POST("/:id/toggle", h.ToggleLink)
	}
}

// ListLinks returns every link, inactive ones included, in display order.
func (h *PortfolioLinkHandler) ListLinks(c *gin.Context) {
	c.JSON(http.StatusOK, h.linkService.ListLinks(c.Request.Context()))
}

func (h *PortfolioLinkHandler) CreateLink(c *gin.Context) {
	var form forms.LinkForm
	if !h.BindAndValidate_JSON(c, &form) {
		return
	}

	link, err := h.linkService.CreateLink(c.Request.Context(), &form)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *PortfolioLinkHandler) GetLink(c *gin.Context) {
	link, err := h.linkService.GetLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *PortfolioLinkHandler) ReplaceLink(c *gin.Context) {
	var form forms.LinkForm
	if !h.BindAndValidate_JSON(c, &form) {
		return
	}

	link, err := h.linkService.UpdateLink(c.Request.Context(), c.Param("id"), &form)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *PortfolioLinkHandler) PatchLink(c *gin.Context) {
	var patch models.PortfolioLinkPatch
	if !h.BindAndValidate_JSON(c, &patch) {
		return
	}

	link, err := h.linkService.PatchLink(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *PortfolioLinkHandler) DeleteLink(c *gin.Context) {
	if err := h.linkService.DeleteLink(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PortfolioLinkHandler) ToggleLink(c *gin.Context) {
	link, err := h.linkService.ToggleLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}
