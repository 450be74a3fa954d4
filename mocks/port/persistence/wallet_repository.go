package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/voyagehub/payment-ledger/internal/domain/entity"
)

// MockWalletRepository is a mock implementation of the WalletRepository interface
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.VendorWallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VendorWallet), args.Error(1)
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *entity.VendorWallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) Credit(ctx context.Context, userID uint64, amountMinor int64) error {
	args := m.Called(ctx, userID, amountMinor)
	return args.Error(0)
}

func (m *MockWalletRepository) Debit(ctx context.Context, userID uint64, amountMinor int64) error {
	args := m.Called(ctx, userID, amountMinor)
	return args.Error(0)
}
