package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/config"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/infrastructure/crm/zoho"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/infrastructure/database"
	httpServer "github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/infrastructure/http"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/infrastructure/messaging"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/infrastructure/source/woocommerce"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/logger"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// Run database migrations
	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	repos := database.NewRepositories(db, zapLogger)

	// Initialize gateways
	crmClient := zoho.NewClient(cfg.Zoho, zapLogger)
	orderSource := woocommerce.NewClient(cfg.WooCommerce, zapLogger)

	// Optional run-event publisher
	var publisher usecase.RunEventPublisher
	if cfg.Redis.Addr != "" {
		redisPublisher, err := messaging.NewRedisPublisher(cfg.Redis, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisPublisher.Close()
		publisher = redisPublisher
	}

	// Create sync service
	syncService := usecase.NewSyncService(
		orderSource,
		usecase.NewContactResolver(crmClient, zapLogger),
		usecase.NewDealResolver(crmClient, zapLogger),
		repos.SyncRun,
		publisher,
		zapLogger,
	)

	// Initialize HTTP server
	httpSrv := httpServer.NewServer(cfg, zapLogger, repos, syncService)

	go func() {
		if err := httpSrv.Start(); err != nil {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zapLogger.Info("Shutting down server...")

	// Give in-flight requests a bounded window to drain
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		zapLogger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	zapLogger.Info("Server shut down successfully")
}
