package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/repository"
)

type syncRunRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSyncRunRepository creates a new sync run repository
func NewSyncRunRepository(db *gorm.DB, logger *zap.Logger) repository.SyncRunRepository {
	return &syncRunRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRun inserts a run in its initial state
func (r *syncRunRepository) CreateRun(ctx context.Context, run *model.SyncRun) error {
	err := r.db.WithContext(ctx).Create(run).Error
	if err != nil {
		r.logger.Error("Failed to create sync run",
			zap.String("run_id", run.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to create sync run: %w", err)
	}

	return nil
}

// FinishRun updates the run's final status and counters
func (r *syncRunRepository) FinishRun(ctx context.Context, run *model.SyncRun) error {
	updates := map[string]interface{}{
		"status":           run.Status,
		"finished_at":      run.FinishedAt,
		"orders_attempted": run.OrdersAttempted,
		"orders_failed":    run.OrdersFailed,
		"contacts_created": run.ContactsCreated,
		"contacts_reused":  run.ContactsReused,
		"deals_created":    run.DealsCreated,
		"deals_skipped":    run.DealsSkipped,
		"error_message":    run.ErrorMessage,
	}

	err := r.db.WithContext(ctx).
		Model(&model.SyncRun{}).
		Where("id = ?", run.ID).
		Updates(updates).Error
	if err != nil {
		r.logger.Error("Failed to finish sync run",
			zap.String("run_id", run.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to finish sync run: %w", err)
	}

	return nil
}

// SaveResult inserts the outcome of one processed order
func (r *syncRunRepository) SaveResult(ctx context.Context, result *model.OrderSyncResult) error {
	err := r.db.WithContext(ctx).Create(result).Error
	if err != nil {
		r.logger.Error("Failed to save order sync result",
			zap.Int64("order_id", result.OrderID),
			zap.Error(err))
		return fmt.Errorf("failed to save order sync result: %w", err)
	}

	return nil
}

// GetRun retrieves a run with its per-order results
func (r *syncRunRepository) GetRun(ctx context.Context, id uuid.UUID) (*model.SyncRun, error) {
	var run model.SyncRun

	err := r.db.WithContext(ctx).
		Preload("Results").
		Where("id = ?", id).
		First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get sync run",
			zap.String("run_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get sync run: %w", err)
	}

	return &run, nil
}

// ListRuns retrieves the most recent runs, newest first
func (r *syncRunRepository) ListRuns(ctx context.Context, limit int) ([]model.SyncRun, error) {
	var runs []model.SyncRun

	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		r.logger.Error("Failed to list sync runs", zap.Error(err))
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}

	return runs, nil
}
