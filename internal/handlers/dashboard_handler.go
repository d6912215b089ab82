package handlers

import (
	"net/http"

	"portfolio_backend/internal/forms"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/views"

	"github.com/gin-gonic/gin"
)

// DashboardHandler renders the HTML dashboard and handles its form posts.
// Every successful post redirects (303) back to the section list; a form that
// fails validation is rendered again with its values and a 400.
type DashboardHandler struct {
	*BaseHandler
	projectService   services.ProjectService
	linkService      services.PortfolioLinkService
	photoService     services.PhotoService
	profileService   services.ProfileService
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, c *services.ServiceContainer) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		projectService:   c.ProjectService,
		linkService:      c.PortfolioLinkService,
		photoService:     c.PhotoService,
		profileService:   c.ProfileService,
		dashboardService: c.DashboardService,
	}
}

// RegisterRoutes mounts the JSON overview on the API group.
func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard/overview", h.GetOverview)
}

// RegisterPages mounts the HTML dashboard on the root router.
func (h *DashboardHandler) RegisterPages(r gin.IRouter) {
	r.GET("/dashboard", h.ShowDashboard)

	dash := r.Group("/dashboard")
	{
		dash.POST("/profile", h.SaveProfile)

		dash.POST("/projects", h.CreateProject)
		dash.POST("/projects/:id", h.UpdateProject)
		dash.POST("/projects/:id/delete", h.DeleteProject)

		dash.POST("/links", h.CreateLink)
		dash.POST("/links/:id", h.UpdateLink)
		dash.POST("/links/:id/delete", h.DeleteLink)
		dash.POST("/links/:id/toggle", h.ToggleLink)

		dash.POST("/photos", h.AddPhoto)
		dash.POST("/photos/:id/delete", h.DeletePhoto)
		dash.POST("/photos/:id/profile", h.SetProfilePhoto)
	}
}

func (h *DashboardHandler) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Overview(c.Request.Context()))
}

// ============================================================================
// Page rendering
// ============================================================================

func (h *DashboardHandler) ShowDashboard(c *gin.Context) {
	state := views.ParseDashboardState(c.Query)
	page := h.buildPage(c, state)
	c.HTML(http.StatusOK, views.DashboardTemplate, page)
}

// buildPage fills the active section. An edit id that no longer exists is
// dropped so the section shows its plain list.
func (h *DashboardHandler) buildPage(c *gin.Context, state views.DashboardState) *views.DashboardPage {
	ctx := c.Request.Context()

	switch state.Section {
	case models.SectionProjects:
		page := views.NewDashboardPage(h.checkEditID(c, state, func(id string) bool {
			_, err := h.projectService.GetProject(ctx, id)
			return err == nil
		}))
		page.Projects = h.projectService.ListProjects(ctx)
		if page.State.EditID != "" {
			project, _ := h.projectService.GetProject(ctx, page.State.EditID)
			page.ProjectForm = forms.NewProjectForm(project)
		} else {
			page.ProjectForm = forms.NewProjectForm(nil)
		}
		return page

	case models.SectionPortfolioLinks:
		page := views.NewDashboardPage(h.checkEditID(c, state, func(id string) bool {
			_, err := h.linkService.GetLink(ctx, id)
			return err == nil
		}))
		page.Links = h.linkService.ListLinks(ctx)
		if page.State.EditID != "" {
			link, _ := h.linkService.GetLink(ctx, page.State.EditID)
			page.LinkForm = forms.NewLinkForm(link)
		} else {
			page.LinkForm = forms.NewLinkForm(nil)
		}
		return page

	case models.SectionGallery:
		page := views.NewDashboardPage(state)
		page.Photos = h.photoService.ListPhotos(ctx)
		return page

	case models.SectionProfile:
		page := views.NewDashboardPage(state)
		page.Profile = h.profileService.GetProfile(ctx)
		page.ProfileForm = forms.NewProfileForm(page.Profile)
		return page

	default:
		page := views.NewDashboardPage(state)
		page.Overview = h.dashboardService.Overview(ctx)
		return page
	}
}

func (h *DashboardHandler) checkEditID(c *gin.Context, state views.DashboardState, exists func(string) bool) views.DashboardState {
	if state.EditID != "" && !exists(state.EditID) {
		logger.CtxWarn(c.Request.Context(), "dashboard edit target not found", "section", state.Section, "id", state.EditID)
		state.EditID = ""
	}
	return state
}

// postState is the state a form post returns to: the theme from the query
// and the section owning the form.
func postState(c *gin.Context, section models.DashboardSection) views.DashboardState {
	state := views.ParseDashboardState(c.Query)
	state.Section = section
	state.EditID = ""
	state.Creating = false
	return state
}

func (h *DashboardHandler) redirect(c *gin.Context, state views.DashboardState) {
	c.Redirect(http.StatusSeeOther, state.ListURL())
}

// ============================================================================
// Profile
// ============================================================================

func (h *DashboardHandler) SaveProfile(c *gin.Context) {
	state := postState(c, models.SectionProfile)

	var form forms.ProfileForm
	fieldErrors, err := h.BindForm(c, &form)
	if err != nil {
		h.HandlePageError(c, err)
		return
	}
	if fieldErrors != nil {
		page := h.buildPage(c, state)
		page.ProfileForm = form
		page.Errors = fieldErrors
		c.HTML(http.StatusBadRequest, views.DashboardTemplate, page)
		return
	}

	h.profileService.UpdateProfile(c.Request.Context(), &form)
	h.redirect(c, state)
}

// ============================================================================
// Projects
// ============================================================================

func (h *DashboardHandler) CreateProject(c *gin.Context) {
	h.saveProject(c, "")
}

func (h *DashboardHandler) UpdateProject(c *gin.Context) {
	h.saveProject(c, c.Param("id"))
}

func (h *DashboardHandler) saveProject(c *gin.Context, id string) {
	ctx := c.Request.Context()
	state := postState(c, models.SectionProjects)

	var form forms.ProjectForm
	fieldErrors, err := h.BindForm(c, &form)
	if err != nil {
		h.HandlePageError(c, err)
		return
	}
	if fieldErrors != nil {
		draft := state
		draft.EditID = id
		draft.Creating = id == ""
		page := h.buildPage(c, draft)
		page.ProjectForm = form
		page.Errors = fieldErrors
		c.HTML(http.StatusBadRequest, views.DashboardTemplate, page)
		return
	}

	patch := form.Patch()
	if id == "" {
		_, err = h.projectService.CreateProject(ctx, &patch)
	} else {
		_, err = h.projectService.UpdateProject(ctx, id, &patch)
	}
	if err != nil {
		h.HandlePageError(c, err)
		return
	}
	h.redirect(c, state)
}

func (h *DashboardHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		h.HandlePageError(c, err)
		return
	}
	h.redirect(c, postState(c, models.SectionProjects))
}

// ============================================================================
// Portfolio links
// ============================================================================

func (h *DashboardHandler) CreateLink(c *gin.Context) {
	h.saveLink(c, "")
}

func (h *DashboardHandler) UpdateLink(c *gin.Context) {
	h.saveLink(c, c.Param("id"))
}

func (h *DashboardHandler) saveLink(c *gin.Context, id string) {
	ctx := c.Request.Context()
	state := postState(c, models.SectionPortfolioLinks)

	var form forms.LinkForm
	fieldErrors, err := h.BindForm(c, &form)
	if err != nil {
		h.HandlePageError(c, err)
		return
	}
	// gin binds an empty field as 0; a blank order means "append".
	if c.PostForm("order") == "" {
		form.Order = nil
	}
	if fieldErrors != nil {
		draft := state
		draft.EditID = id
		draft.Creating = id == ""
		page := h.buildPage(c, draft)
		page.LinkForm = form
		page.Errors = fieldErrors
		c.HTML(http.StatusBadRequest, views.DashboardTemplate, page)
		return
	}

	if id == "" {
		_, err = h.linkService.CreateLink(ctx, &form)
	} else {
		_, err = h.linkService.UpdateLink(ctx, id, &form)
	}
	if err != nil {
		h.HandlePageError(c, err)
		return
	}
	h.redirect(c, state)
}

func (h *DashboardHandler) DeleteLink(c *gin.Context) {
	if err := h.linkService.DeleteLink(c.Request.Context(), c.Param("id")); err != nil {
		h.HandlePageError(c, err)
		return
	}
	h.redirect(c, postState(c, models.SectionPortfolioLinks))
}

func (h *DashboardHandler) ToggleLink(c *gin.Context) {
	if _, err := h.linkService.ToggleLink(c.Request.Context(), c.Param("id")); err != nil {
		h.HandlePageError(c, err)
		return
	}
	h.redirect(c, postState(c, models.SectionPortfolioLinks))
}

// ============================================================================
// Photos
// ============================================================================

func (h *DashboardHandler) AddPhoto(c *gin.Context) {
	state := postState(c, models.SectionGallery)

	var form forms.PhotoForm
	fieldErrors, err := h.BindForm(c, &form)
	if err != nil {
		h.HandlePageError(c, err)
		return
	}
	if fieldErrors != nil {
		page := h.buildPage(c, state)
		page.Errors = fieldErrors
		c.HTML(http.StatusBadRequest, views.DashboardTemplate, page)
		return
	}

	if _, err := h.photoService.AddPhoto(c.Request.Context(), &form); err != nil {
		h.HandlePageError(c, err)
		return
	}
	h.redirect(c, state)
}

func (h *DashboardHandler) DeletePhoto(c *gin.Context) {
	if err := h.photoService.DeletePhoto(c.Request.Context(), c.Param("id")); err != nil {
		h.HandlePageError(c, err)
		return
	}
	h.redirect(c, postState(c, models.SectionGallery))
}

func (h *DashboardHandler) SetProfilePhoto(c *gin.Context) {
	if err := h.photoService.SetProfilePhoto(c.Request.Context(), c.Param("id")); err != nil {
		h.HandlePageError(c, err)
		return
	}
	h.redirect(c, postState(c, models.SectionGallery))
}
