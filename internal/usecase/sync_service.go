package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/gateway"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/repository"
)

// RunEventPublisher notifies external consumers that a run completed.
type RunEventPublisher interface {
	PublishRunCompleted(ctx context.Context, run *model.SyncRun) error
}

// SyncService drives one batch synchronization: fetch the order batch, then
// for each order resolve a contact and a deal, containing failures per order.
type SyncService struct {
	source    gateway.OrderSource
	contacts  *ContactResolver
	deals     *DealResolver
	runs      repository.SyncRunRepository
	publisher RunEventPublisher
	logger    *zap.Logger
}

// NewSyncService creates a new sync service. publisher may be nil when run
// event publishing is not configured.
func NewSyncService(
	source gateway.OrderSource,
	contacts *ContactResolver,
	deals *DealResolver,
	runs repository.SyncRunRepository,
	publisher RunEventPublisher,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		source:    source,
		contacts:  contacts,
		deals:     deals,
		runs:      runs,
		publisher: publisher,
		logger:    logger,
	}
}

// Run executes one synchronization pass. Orders are processed strictly
// sequentially; one order's failure is recorded and the batch moves on. The
// only fatal condition is the batch fetch itself failing, in which case the
// returned run carries the failed status and the error is returned.
func (s *SyncService) Run(ctx context.Context) (*model.SyncRun, error) {
	run := &model.SyncRun{
		ID:        uuid.New(),
		Status:    model.RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	if err := s.runs.CreateRun(ctx, run); err != nil {
		// Run history is an audit trail, not a precondition for syncing.
		s.logger.Error("Failed to record sync run", zap.Error(err))
	}

	s.logger.Info("Starting order sync", zap.String("run_id", run.ID.String()))

	orders, err := s.source.FetchOrders(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.Error(err))
		run.ErrorMessage = err.Error()
		s.finish(ctx, run, model.RunStatusFailed)
		return run, err
	}

	if len(orders) == 0 {
		s.logger.Info("No orders found, nothing to sync",
			zap.String("run_id", run.ID.String()))
		s.finish(ctx, run, model.RunStatusCompleted)
		s.publish(ctx, run)
		return run, nil
	}

	for _, order := range orders {
		result := s.processOrder(ctx, run.ID, order)

		run.OrdersAttempted++
		if result.Failed() {
			run.OrdersFailed++
		}
		switch result.ContactAction {
		case model.ActionCreated:
			run.ContactsCreated++
		case model.ActionReused:
			run.ContactsReused++
		}
		switch result.DealAction {
		case model.ActionCreated:
			run.DealsCreated++
		case model.ActionSkipped:
			run.DealsSkipped++
		}

		if err := s.runs.SaveResult(ctx, result); err != nil {
			s.logger.Error("Failed to record order result",
				zap.Int64("order_id", order.ID),
				zap.Error(err))
		}
	}

	s.finish(ctx, run, model.RunStatusCompleted)

	s.logger.Info("Order sync completed",
		zap.String("run_id", run.ID.String()),
		zap.Int("orders_attempted", run.OrdersAttempted),
		zap.Int("orders_failed", run.OrdersFailed),
		zap.Int("contacts_created", run.ContactsCreated),
		zap.Int("contacts_reused", run.ContactsReused),
		zap.Int("deals_created", run.DealsCreated),
		zap.Int("deals_skipped", run.DealsSkipped))

	s.publish(ctx, run)

	return run, nil
}

// publish emits the run-completed event. Publishing is best effort; a broker
// failure never fails the run.
func (s *SyncService) publish(ctx context.Context, run *model.SyncRun) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRunCompleted(ctx, run); err != nil {
		s.logger.Error("Failed to publish run event",
			zap.String("run_id", run.ID.String()),
			zap.Error(err))
	}
}

// processOrder runs the contact-then-deal sequence for a single order. Any
// error is captured into the result so the caller can continue with the next
// order; a batch of N orders with one misbehaving order still processes the
// other N-1.
func (s *SyncService) processOrder(ctx context.Context, runID uuid.UUID, order model.Order) *model.OrderSyncResult {
	s.logger.Info("Processing order", zap.Int64("order_id", order.ID))

	result := &model.OrderSyncResult{
		SyncRunID: runID,
		OrderID:   order.ID,
	}

	contactID, contactCreated, err := s.contacts.Resolve(ctx, order)
	if err != nil {
		s.logger.Error("Order sync failed at contact step",
			zap.Int64("order_id", order.ID),
			zap.Error(err))
		result.ContactAction = model.ActionFailed
		result.ErrorMessage = err.Error()
		return result
	}
	switch {
	case contactCreated:
		result.ContactAction = model.ActionCreated
	case contactID != "":
		result.ContactAction = model.ActionReused
	default:
		result.ContactAction = model.ActionSkipped
	}
	result.ContactID = contactID

	dealName, dealCreated, err := s.deals.Resolve(ctx, order, contactID)
	result.DealName = dealName
	if err != nil {
		s.logger.Error("Order sync failed at deal step",
			zap.Int64("order_id", order.ID),
			zap.Error(err))
		result.DealAction = model.ActionFailed
		result.ErrorMessage = err.Error()
		return result
	}
	if dealCreated {
		result.DealAction = model.ActionCreated
	} else {
		result.DealAction = model.ActionSkipped
	}

	return result
}

func (s *SyncService) finish(ctx context.Context, run *model.SyncRun, status string) {
	now := time.Now().UTC()
	run.Status = status
	run.FinishedAt = &now

	if err := s.runs.FinishRun(ctx, run); err != nil {
		s.logger.Error("Failed to finalize sync run",
			zap.String("run_id", run.ID.String()),
			zap.Error(err))
	}
}
