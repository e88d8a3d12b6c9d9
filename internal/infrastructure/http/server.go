package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/adapter/handler/http"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/config"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/infrastructure/database"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/middleware/auth"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/usecase"
)

type Server struct {
	config      *config.Config
	logger      *zap.Logger
	echo        *echo.Echo
	repos       *database.Repositories
	syncService *usecase.SyncService
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories, syncService *usecase.SyncService) *Server {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	return &Server{
		config:      cfg,
		logger:      logger,
		echo:        e,
		repos:       repos,
		syncService: syncService,
	}
}

func (s *Server) Start() error {
	// Setup routes
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Initialize handlers
	syncHandler := handlers.NewSyncHandler(s.syncService, s.logger)
	runsHandler := handlers.NewRunsHandler(s.repos.SyncRun, s.logger)

	jwtConfig := auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
		SkipPaths: []string{
			"/health",
		},
	}

	// API v1 routes (all require authentication)
	v1 := s.echo.Group("/api/v1", auth.JWTMiddleware(jwtConfig))

	v1.POST("/sync", syncHandler.TriggerSync)
	v1.GET("/runs", runsHandler.ListRuns)
	v1.GET("/runs/:id", runsHandler.GetRun)
}
