package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/errors"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/gateway"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/usecase"
)

func newSyncService(source *MockOrderSource, crm *MockCRMGateway, runs *MockSyncRunRepository, publisher usecase.RunEventPublisher) *usecase.SyncService {
	logger := zap.NewNop()
	return usecase.NewSyncService(
		source,
		usecase.NewContactResolver(crm, logger),
		usecase.NewDealResolver(crm, logger),
		runs,
		publisher,
		logger,
	)
}

func stubRunRepo() *MockSyncRunRepository {
	runs := new(MockSyncRunRepository)
	runs.On("CreateRun", mock.Anything, mock.AnythingOfType("*model.SyncRun")).Return(nil)
	runs.On("SaveResult", mock.Anything, mock.AnythingOfType("*model.OrderSyncResult")).Return(nil)
	runs.On("FinishRun", mock.Anything, mock.AnythingOfType("*model.SyncRun")).Return(nil)
	return runs
}

func TestSyncService_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch failure aborts the run", func(t *testing.T) {
		source := new(MockOrderSource)
		source.On("FetchOrders", ctx).
			Return(nil, apperrors.NewSourceFetchError(errors.New("connection refused")))
		crm := new(MockCRMGateway)
		runs := stubRunRepo()

		run, err := newSyncService(source, crm, runs, nil).Run(ctx)

		assert.Error(t, err)
		var fetchErr *apperrors.SourceFetchError
		assert.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, model.RunStatusFailed, run.Status)
		assert.NotNil(t, run.FinishedAt)
		crm.AssertNotCalled(t, "FindContactByEmail")
		runs.AssertCalled(t, "FinishRun", mock.Anything, run)
	})

	t.Run("empty batch completes with zero counts", func(t *testing.T) {
		source := new(MockOrderSource)
		source.On("FetchOrders", ctx).Return([]model.Order{}, nil)
		crm := new(MockCRMGateway)
		runs := stubRunRepo()

		run, err := newSyncService(source, crm, runs, nil).Run(ctx)

		assert.NoError(t, err)
		assert.Equal(t, model.RunStatusCompleted, run.Status)
		assert.Zero(t, run.OrdersAttempted)
		runs.AssertNotCalled(t, "SaveResult")
	})

	t.Run("first run creates contact and deal for a fresh order", func(t *testing.T) {
		source := new(MockOrderSource)
		source.On("FetchOrders", ctx).Return([]model.Order{testOrder(101, "ann@x.com")}, nil)

		crm := new(MockCRMGateway)
		crm.On("FindContactByEmail", ctx, "ann@x.com").Return(gateway.ContactNotFound())
		crm.On("CreateContact", ctx, mock.AnythingOfType("model.NewContact")).Return("crm-1", nil)
		crm.On("FindDealByName", ctx, "Order #101 - Widget").Return(gateway.DealNotFound())
		crm.On("CreateDeal", ctx, mock.MatchedBy(func(deal model.NewDeal) bool {
			return deal.Name == "Order #101 - Widget" &&
				deal.Stage == model.DealStageQualification &&
				deal.ContactID == "crm-1"
		})).Return(nil)

		runs := stubRunRepo()
		run, err := newSyncService(source, crm, runs, nil).Run(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, run.OrdersAttempted)
		assert.Equal(t, 1, run.ContactsCreated)
		assert.Equal(t, 1, run.DealsCreated)
		assert.Zero(t, run.OrdersFailed)
		crm.AssertExpectations(t)
	})

	t.Run("resync of an unchanged batch causes zero creates", func(t *testing.T) {
		source := new(MockOrderSource)
		source.On("FetchOrders", ctx).Return([]model.Order{testOrder(101, "ann@x.com")}, nil)

		crm := new(MockCRMGateway)
		crm.On("FindContactByEmail", ctx, "ann@x.com").Return(gateway.ContactFound("crm-1"))
		crm.On("FindDealByName", ctx, "Order #101 - Widget").Return(gateway.DealFound())

		runs := stubRunRepo()
		run, err := newSyncService(source, crm, runs, nil).Run(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, run.ContactsReused)
		assert.Equal(t, 1, run.DealsSkipped)
		assert.Zero(t, run.ContactsCreated)
		assert.Zero(t, run.DealsCreated)
		crm.AssertNotCalled(t, "CreateContact")
		crm.AssertNotCalled(t, "CreateDeal")
	})

	t.Run("one failing order does not abort the batch", func(t *testing.T) {
		bad := testOrder(101, "ann@x.com")
		good := model.Order{
			ID:        102,
			Billing:   model.Billing{FirstName: "Bo", LastName: "Kim", Email: "bo@x.com"},
			LineItems: []model.LineItem{{Name: "Gadget"}},
		}

		source := new(MockOrderSource)
		source.On("FetchOrders", ctx).Return([]model.Order{bad, good}, nil)

		crm := new(MockCRMGateway)
		crm.On("FindContactByEmail", ctx, "ann@x.com").Return(gateway.ContactNotFound())
		crm.On("CreateContact", ctx, mock.MatchedBy(func(contact model.NewContact) bool {
			return contact.Email == "ann@x.com"
		})).Return("", errors.New("mandatory field missing"))

		crm.On("FindContactByEmail", ctx, "bo@x.com").Return(gateway.ContactFound("crm-2"))
		crm.On("FindDealByName", ctx, "Order #102 - Gadget").Return(gateway.DealNotFound())
		crm.On("CreateDeal", ctx, mock.MatchedBy(func(deal model.NewDeal) bool {
			return deal.Name == "Order #102 - Gadget" && deal.ContactID == "crm-2"
		})).Return(nil)

		runs := stubRunRepo()
		run, err := newSyncService(source, crm, runs, nil).Run(ctx)

		assert.NoError(t, err)
		assert.Equal(t, model.RunStatusCompleted, run.Status)
		assert.Equal(t, 2, run.OrdersAttempted)
		assert.Equal(t, 1, run.OrdersFailed)
		assert.Equal(t, 1, run.DealsCreated)
		crm.AssertExpectations(t)
	})

	t.Run("order without email still creates an unlinked deal", func(t *testing.T) {
		order := model.Order{
			ID:        103,
			LineItems: []model.LineItem{{Name: "Sprocket"}},
		}
		source := new(MockOrderSource)
		source.On("FetchOrders", ctx).Return([]model.Order{order}, nil)

		crm := new(MockCRMGateway)
		crm.On("FindDealByName", ctx, "Order #103 - Sprocket").Return(gateway.DealNotFound())
		crm.On("CreateDeal", ctx, mock.MatchedBy(func(deal model.NewDeal) bool {
			return deal.ContactID == ""
		})).Return(nil)

		runs := stubRunRepo()
		run, err := newSyncService(source, crm, runs, nil).Run(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, run.DealsCreated)
		assert.Zero(t, run.ContactsCreated)
		crm.AssertNotCalled(t, "FindContactByEmail")
		crm.AssertNotCalled(t, "CreateContact")
	})

	t.Run("run event is published on completion", func(t *testing.T) {
		source := new(MockOrderSource)
		source.On("FetchOrders", ctx).Return([]model.Order{testOrder(101, "ann@x.com")}, nil)

		crm := new(MockCRMGateway)
		crm.On("FindContactByEmail", ctx, "ann@x.com").Return(gateway.ContactFound("crm-1"))
		crm.On("FindDealByName", ctx, "Order #101 - Widget").Return(gateway.DealFound())

		runs := stubRunRepo()

		publisher := new(MockRunEventPublisher)
		publisher.On("PublishRunCompleted", ctx, mock.AnythingOfType("*model.SyncRun")).Return(nil)

		run, err := newSyncService(source, crm, runs, publisher).Run(ctx)

		assert.NoError(t, err)
		publisher.AssertCalled(t, "PublishRunCompleted", ctx, run)
	})

	t.Run("empty batch still publishes its run event", func(t *testing.T) {
		source := new(MockOrderSource)
		source.On("FetchOrders", ctx).Return([]model.Order{}, nil)
		crm := new(MockCRMGateway)
		runs := stubRunRepo()

		publisher := new(MockRunEventPublisher)
		publisher.On("PublishRunCompleted", ctx, mock.AnythingOfType("*model.SyncRun")).Return(nil)

		run, err := newSyncService(source, crm, runs, publisher).Run(ctx)

		assert.NoError(t, err)
		assert.Equal(t, model.RunStatusCompleted, run.Status)
		publisher.AssertCalled(t, "PublishRunCompleted", ctx, run)
	})

	t.Run("no event is published for a failed run", func(t *testing.T) {
		source := new(MockOrderSource)
		source.On("FetchOrders", ctx).
			Return(nil, apperrors.NewSourceFetchError(errors.New("connection refused")))
		crm := new(MockCRMGateway)
		runs := stubRunRepo()

		publisher := new(MockRunEventPublisher)

		_, err := newSyncService(source, crm, runs, publisher).Run(ctx)

		assert.Error(t, err)
		publisher.AssertNotCalled(t, "PublishRunCompleted")
	})

	t.Run("persistence failures never abort the sync", func(t *testing.T) {
		source := new(MockOrderSource)
		source.On("FetchOrders", ctx).Return([]model.Order{testOrder(101, "ann@x.com")}, nil)

		crm := new(MockCRMGateway)
		crm.On("FindContactByEmail", ctx, "ann@x.com").Return(gateway.ContactFound("crm-1"))
		crm.On("FindDealByName", ctx, "Order #101 - Widget").Return(gateway.DealFound())

		runs := new(MockSyncRunRepository)
		runs.On("CreateRun", mock.Anything, mock.Anything).Return(errors.New("db down"))
		runs.On("SaveResult", mock.Anything, mock.Anything).Return(errors.New("db down"))
		runs.On("FinishRun", mock.Anything, mock.Anything).Return(errors.New("db down"))

		run, err := newSyncService(source, crm, runs, nil).Run(ctx)

		assert.NoError(t, err)
		assert.Equal(t, model.RunStatusCompleted, run.Status)
		assert.Equal(t, 1, run.OrdersAttempted)
	})
}
