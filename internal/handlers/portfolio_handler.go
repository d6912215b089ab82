package handlers

import (
	"net/http"
	"net/url"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/views"

	"github.com/gin-gonic/gin"
)

// PortfolioHandler serves the public side: the landing page, one page per
// active portfolio link and the contact form.
type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
	contactService   services.ContactService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService, contactService services.ContactService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
		contactService:   contactService,
	}
}

func (h *PortfolioHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/portfolios", h.ListPortfolios)

	portfolio := r.Group("/portfolio")
	{
		portfolio.GET("/:slug", h.GetPortfolio)
		portfolio.POST("/:slug/contact", h.SendContact)
	}
}

func (h *PortfolioHandler) RegisterPages(r gin.IRouter) {
	r.GET("/", h.ShowLanding)
	r.GET("/portfolio/:slug", h.ShowPortfolio)
	r.POST("/portfolio/:slug/contact", h.SubmitContact)
}

// ============================================================================
// JSON API
// ============================================================================

func (h *PortfolioHandler) ListPortfolios(c *gin.Context) {
	c.JSON(http.StatusOK, h.portfolioService.ActivePortfolios(c.Request.Context()))
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	page, err := h.portfolioService.Page(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PortfolioHandler) SendContact(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.contactService.Send(c.Request.Context(), c.Param("slug"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}

// ============================================================================
// HTML pages
// ============================================================================

func (h *PortfolioHandler) ShowLanding(c *gin.Context) {
	c.HTML(http.StatusOK, views.LandingTemplate, views.LandingPage{
		Portfolios: h.portfolioService.ActivePortfolios(c.Request.Context()),
	})
}

func (h *PortfolioHandler) ShowPortfolio(c *gin.Context) {
	page, err := h.portfolioService.Page(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandlePageError(c, err)
		return
	}
	c.HTML(http.StatusOK, views.PortfolioTemplate, views.PortfolioView{
		Page: page,
		Sent: c.Query("sent") == "1",
	})
}

// SubmitContact follows post/redirect/get: a sent message redirects back to
// the page with ?sent=1, a rejected one re-renders the form with a 400.
func (h *PortfolioHandler) SubmitContact(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	page, err := h.portfolioService.Page(ctx, slug)
	if err != nil {
		h.HandlePageError(c, err)
		return
	}

	var req dto.ContactRequest
	fieldErrors, err := h.BindForm(c, &req)
	if err != nil {
		h.HandlePageError(c, err)
		return
	}
	if fieldErrors != nil {
		c.HTML(http.StatusBadRequest, views.PortfolioTemplate, views.PortfolioView{
			Page:    page,
			Contact: req,
			Errors:  fieldErrors,
		})
		return
	}

	if err := h.contactService.Send(ctx, slug, &req); err != nil {
		logger.CtxWithError(ctx, "contact message not delivered", err, "slug", slug)
		c.HTML(statusOf(err), views.PortfolioTemplate, views.PortfolioView{
			Page:    page,
			Contact: req,
			Errors:  map[string]string{"form": "Le message n'a pas pu être envoyé. Réessayez plus tard."},
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/portfolio/"+url.PathEscape(slug)+"?sent=1#contact")
}
