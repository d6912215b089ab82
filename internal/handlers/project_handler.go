package handlers

import (
	"net/http"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
	}
}

func (h *ProjectHandler) RegisterRoutes(r *gin.RouterGroup) {
	projects := r.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/:id", h.GetProject)
		projects.PUT("/:id", h.ReplaceProject)
		projects.PATCH("/:id", h.PatchProject)
		projects.DELETE("/:id", h.DeleteProject)
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.projectService.ListProjects(c.Request.Context()))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	patch := req.Patch()
	project, err := h.projectService.CreateProject(c.Request.Context(), &patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) ReplaceProject(c *gin.Context) {
	var req dto.ProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	patch := req.Patch()
	project, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) PatchProject(c *gin.Context) {
	var patch models.ProjectPatch
	if !h.BindAndValidate_JSON(c, &patch) {
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
