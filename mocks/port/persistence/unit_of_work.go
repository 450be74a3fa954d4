package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/voyagehub/payment-ledger/internal/domain/port/persistence"
)

// MockUnitOfWork is a mock implementation of the UnitOfWork interface
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.TransactionRepository)
}

func (m *MockUnitOfWork) GetRefundRepository(ctx context.Context) persistence.RefundRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.RefundRepository)
}

func (m *MockUnitOfWork) GetWalletRepository(ctx context.Context) persistence.WalletRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.WalletRepository)
}

func (m *MockUnitOfWork) GetBookingRepository(ctx context.Context) persistence.BookingRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.BookingRepository)
}

func (m *MockUnitOfWork) GetWebhookEventRepository(ctx context.Context) persistence.WebhookEventRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.WebhookEventRepository)
}
