package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/voyagehub/payment-ledger/internal/domain/entity"
)

// MockTransactionRepository is a mock implementation of the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.PaymentTransaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateByReference(ctx context.Context, referenceNumber string, update entity.TransactionUpdate) (int64, error) {
	args := m.Called(ctx, referenceNumber, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) GetByReference(ctx context.Context, referenceNumber string) (*entity.PaymentTransaction, error) {
	args := m.Called(ctx, referenceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PaymentTransaction), args.Error(1)
}

func (m *MockTransactionRepository) GetByReferenceAndType(ctx context.Context, referenceNumber string, txType entity.TransactionType) (*entity.PaymentTransaction, error) {
	args := m.Called(ctx, referenceNumber, txType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PaymentTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByReference(ctx context.Context, referenceNumber string) ([]*entity.PaymentTransaction, error) {
	args := m.Called(ctx, referenceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PaymentTransaction), args.Error(1)
}
