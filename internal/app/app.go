package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/routes"
	"portfolio_backend/internal/seed"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/utils"
	"portfolio_backend/internal/validator"
	"portfolio_backend/internal/views"
	"portfolio_backend/pkg/apperrors"
	"portfolio_backend/ws"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// App is the assembled application: router, services and the dashboard hub.
type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Services *services.ServiceContainer
	Hub      *ws.WebSocketManager
}

// Run builds the application and serves it until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := New(cfg)
	if err != nil {
		return err
	}
	go application.Hub.Run(ctx)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      application.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server starting on %s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server startup error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := application.Services.EmailProvider.Close(); err != nil {
		logger.WithError(err).Warn("Failed to close email provider")
	}
	logger.Info("Server stopped")
	return nil
}

// New wires the application without starting anything. The hub must be
// started with Hub.Run before dashboards can receive events.
func New(cfg *config.Config) (*App, error) {
	apperrors.Debug = !cfg.IsProduction()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	wsManager := ws.NewWebSocketManager()

	serviceContainer, err := initializeServices(cfg, wsManager)
	if err != nil {
		return nil, err
	}

	appHandlers := initializeHandlers(serviceContainer)
	wsHandler := ws.NewWebSocketHandler(wsManager)

	ginRouter, err := initializeGinRouter(cfg)
	if err != nil {
		return nil, err
	}
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return &App{
		Config:   cfg,
		Router:   ginRouter,
		Services: serviceContainer,
		Hub:      wsManager,
	}, nil
}

func initializeServices(cfg *config.Config, events services.EventPublisher) (*services.ServiceContainer, error) {
	ids, err := repositories.NewIDGenerator(cfg.IDs.Generator)
	if err != nil {
		return nil, err
	}

	repos := services.Repositories{
		Projects: repositories.NewProjectRepository(ids),
		Links:    repositories.NewPortfolioLinkRepository(ids),
		Photos:   repositories.NewPhotoRepository(ids),
		Profile:  repositories.NewProfileRepository(ids, models.Profile{}),
	}

	if cfg.Seed.Enabled {
		data := seed.Builtin()
		if cfg.Seed.Path != "" {
			if data, err = seed.Load(cfg.Seed.Path); err != nil {
				return nil, err
			}
		}
		seed.Apply(repos, data)
		logger.Info("Seed data loaded",
			"projects", len(data.Projects),
			"links", len(data.Links),
			"photos", len(data.Photos),
		)
	}

	emailProvider, err := initializeEmail(cfg)
	if err != nil {
		return nil, err
	}

	slugger := utils.Slugger{Transliterate: cfg.Slug.Transliterate}
	return services.NewServiceContainer(repos, slugger, emailProvider, events), nil
}

func initializeEmail(cfg *config.Config) (email.Provider, error) {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP host not configured, contact messages are only logged")
		return NewMockEmailProvider(), nil
	}

	smtpConfig := email.NewSMTPConfig(cfg.Email.SMTPHost, cfg.Email.SMTPPort)
	smtpConfig.Username = cfg.Email.SMTPUsername
	smtpConfig.Password = cfg.Email.SMTPPassword
	smtpConfig.FromEmail = cfg.Email.FromEmail
	smtpConfig.FromName = cfg.Email.FromName
	smtpConfig.UseTLS = cfg.Email.UseTLS

	provider := email.NewSMTPProvider(smtpConfig, email.NewDefaultTemplateManager())
	if err := provider.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email configuration: %w", err)
	}
	logger.Info("SMTP provider configured", "host", smtpConfig.Host, "port", smtpConfig.Port)
	return provider, nil
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)
	return handlers.NewAppHandlers(baseHandler, serviceContainer)
}

func initializeGinRouter(cfg *config.Config) (*gin.Engine, error) {
	templates, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.SetHTMLTemplate(templates)
	return router, nil
}
