package handlers

import (
	"net/http"

	"portfolio_backend/internal/forms"
	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	*BaseHandler
	photoService services.PhotoService
}

func NewPhotoHandler(base *BaseHandler, photoService services.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		BaseHandler:  base,
		photoService: photoService,
	}
}

func (h *PhotoHandler) RegisterRoutes(r *gin.RouterGroup) {
	photos := r.Group("/photos")
	{
		photos.GET("", h.ListPhotos)
		photos.POST("", h.AddPhoto)
		photos.DELETE("/:id", h.DeletePhoto)
		photos.POST("/:id/profile", h.SetProfilePhoto)
	}
}

func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	c.JSON(http.StatusOK, h.photoService.ListPhotos(c.Request.Context()))
}

func (h *PhotoHandler) AddPhoto(c *gin.Context) {
	var form forms.PhotoForm
	if !h.BindAndValidate_JSON(c, &form) {
		return
	}

	photo, err := h.photoService.AddPhoto(c.Request.Context(), &form)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	if err := h.photoService.DeletePhoto(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetProfilePhoto flags the photo and returns the whole gallery, since the
// previous profile photo changed too.
func (h *PhotoHandler) SetProfilePhoto(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.photoService.SetProfilePhoto(ctx, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.photoService.ListPhotos(ctx))
}
