package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/config"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/infrastructure/crm/zoho"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/infrastructure/database"
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

	// Run migrations
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

	run, err := syncService.Run(context.Background())
	if err != nil {
		zapLogger.Error("Sync run aborted",
			zap.String("run_id", run.ID.String()),
			zap.Error(err))
		os.Exit(1)
	}
}
