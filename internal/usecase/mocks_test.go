package usecase_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/gateway"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
)

// MockCRMGateway is a mock implementation of gateway.CRMGateway
type MockCRMGateway struct {
	mock.Mock
}

func (m *MockCRMGateway) FindContactByEmail(ctx context.Context, email string) gateway.ContactLookup {
	args := m.Called(ctx, email)
	return args.Get(0).(gateway.ContactLookup)
}

func (m *MockCRMGateway) FindDealByName(ctx context.Context, name string) gateway.DealLookup {
	args := m.Called(ctx, name)
	return args.Get(0).(gateway.DealLookup)
}

func (m *MockCRMGateway) CreateContact(ctx context.Context, contact model.NewContact) (string, error) {
	args := m.Called(ctx, contact)
	return args.String(0), args.Error(1)
}

func (m *MockCRMGateway) CreateDeal(ctx context.Context, deal model.NewDeal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}

// MockOrderSource is a mock implementation of gateway.OrderSource
type MockOrderSource struct {
	mock.Mock
}

func (m *MockOrderSource) FetchOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

// MockSyncRunRepository is a mock implementation of repository.SyncRunRepository
type MockSyncRunRepository struct {
	mock.Mock
}

func (m *MockSyncRunRepository) CreateRun(ctx context.Context, run *model.SyncRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockSyncRunRepository) FinishRun(ctx context.Context, run *model.SyncRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockSyncRunRepository) SaveResult(ctx context.Context, result *model.OrderSyncResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockSyncRunRepository) GetRun(ctx context.Context, id uuid.UUID) (*model.SyncRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SyncRun), args.Error(1)
}

func (m *MockSyncRunRepository) ListRuns(ctx context.Context, limit int) ([]model.SyncRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SyncRun), args.Error(1)
}

// MockRunEventPublisher is a mock implementation of usecase.RunEventPublisher
type MockRunEventPublisher struct {
	mock.Mock
}

func (m *MockRunEventPublisher) PublishRunCompleted(ctx context.Context, run *model.SyncRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}
