package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		logger.Error("Failed to create extensions", zap.Error(err))
		return err
	}

	if err := db.AutoMigrate(
		&model.SyncRun{},
		&model.OrderSyncResult{},
	); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	// Partial index for pulling failed orders out of large run histories
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_order_sync_results_failed ON order_sync_results (sync_run_id) WHERE error_message <> ''`).Error; err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}
