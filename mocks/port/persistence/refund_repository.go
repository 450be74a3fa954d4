package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/voyagehub/payment-ledger/internal/domain/entity"
)

// MockRefundRepository is a mock implementation of the RefundRepository interface
type MockRefundRepository struct {
	mock.Mock
}

func (m *MockRefundRepository) Create(ctx context.Context, refund *entity.RefundTransaction) error {
	args := m.Called(ctx, refund)
	return args.Error(0)
}

func (m *MockRefundRepository) GetByTransactionID(ctx context.Context, transactionID uint64) (*entity.RefundTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RefundTransaction), args.Error(1)
}

func (m *MockRefundRepository) Update(ctx context.Context, refund *entity.RefundTransaction) error {
	args := m.Called(ctx, refund)
	return args.Error(0)
}
