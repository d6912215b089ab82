package handlers

import (
	"net/http"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/validator"
	"portfolio_backend/internal/views"
	"portfolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ============================================================================
// 1. Base handler
// ============================================================================

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// ============================================================================
// 2. Binding and validation (JSON API)
// ============================================================================

// BindAndValidate_JSON binds the body (JSON or form, by Content-Type) and
// validates it. On failure the error response is already written.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// ============================================================================
// 3. Binding and validation (HTML forms)
// ============================================================================

// BindForm binds a submitted HTML form. Field errors come back as a map so the
// page can be rendered again with the submitted values; err is set only when
// the body could not be decoded at all.
func (h *BaseHandler) BindForm(c *gin.Context, obj interface{}) (fieldErrors map[string]string, err error) {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind form", err, "path", c.Request.URL.Path)
		return nil, err
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Form validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			return vErr.Errors, nil
		}
		return nil, err
	}
	return nil, nil
}

// ============================================================================
// 4. Errors
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// HandlePageError is HandleServiceError for HTML routes: 404s get the
// not-found page, anything else a plain error page.
func (h *BaseHandler) HandlePageError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		appErr = apperrors.InternalError(err)
	} else {
		logger.CtxWarn(ctx, "Service error", "error", appErr.Message, "path", c.Request.URL.Path)
	}

	page := views.NotFoundPage{Status: appErr.HTTPCode, Title: appErr.Message}
	if appErr.HTTPCode == http.StatusNotFound {
		page.Message = "La page demandée n'existe pas ou n'est plus disponible."
	}
	c.HTML(appErr.HTTPCode, views.NotFoundTemplate, page)
}

// statusOf is the HTTP status an error maps to.
func statusOf(err error) int {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr.HTTPCode
	}
	return http.StatusInternalServerError
}
