package routes

import (
	"net/http"
	"strings"

	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/views"
	"portfolio_backend/pkg/apperrors"
	"portfolio_backend/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the JSON API, the HTML pages and the dashboard
// WebSocket on the router.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.WebSocketHandler,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// HTTP API v1
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.ProjectHandler.RegisterRoutes(api)
		appHandlers.PortfolioLinkHandler.RegisterRoutes(api)
		appHandlers.PhotoHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.PortfolioHandler.RegisterRoutes(api)
		appHandlers.DashboardHandler.RegisterRoutes(api)
	}

	// HTML pages
	appHandlers.PortfolioHandler.RegisterPages(ginRouter)
	appHandlers.DashboardHandler.RegisterPages(ginRouter)

	ginRouter.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			apperrors.HandleError(c, apperrors.New(apperrors.CodeNotFound, "route", "Route not found", http.StatusNotFound))
			return
		}
		c.HTML(http.StatusNotFound, views.NotFoundTemplate, views.NotFoundPage{
			Title:   "Page introuvable",
			Message: "La page demandée n'existe pas.",
		})
	})

	// WebSocket
	wsGroup := ginRouter.Group("/ws")
	{
		wsGroup.GET("/dashboard", wsHandler.ServeWS)
	}
	logger.Info("WebSocket route /ws/dashboard registered")
}
