package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
)

// SyncRunRepository persists run history. Orders themselves are never stored;
// only the outcome of processing them is.
type SyncRunRepository interface {
	// CreateRun inserts a run in its initial state.
	CreateRun(ctx context.Context, run *model.SyncRun) error

	// FinishRun updates the run's status, counters and finish time.
	FinishRun(ctx context.Context, run *model.SyncRun) error

	// SaveResult inserts the outcome of one processed order.
	SaveResult(ctx context.Context, result *model.OrderSyncResult) error

	// GetRun returns a run with its per-order results, or nil when absent.
	GetRun(ctx context.Context, id uuid.UUID) (*model.SyncRun, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]model.SyncRun, error)
}
