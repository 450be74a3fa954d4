package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	coremocks "github.com/voyagehub/payment-ledger/mocks/port/core"
	persistencemocks "github.com/voyagehub/payment-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	t.Run("Existing wallet", func(t *testing.T) {
		walletRepo := new(persistencemocks.MockWalletRepository)

		w, err := entity.NewVendorWallet(55, 8500, mockTime)
		require.NoError(t, err)
		walletRepo.On("GetByUserID", mock.Anything, uint64(55)).Return(w, nil)

		service := NewWalletService(walletRepo, mockTime, coremocks.NewMockLogger())

		view, err := service.GetBalance(ctx, 55)

		require.NoError(t, err)
		assert.Equal(t, uint64(55), view.UserID)
		assert.Equal(t, "85.00", view.Balance)
	})

	t.Run("Zero vendor ID", func(t *testing.T) {
		walletRepo := new(persistencemocks.MockWalletRepository)

		service := NewWalletService(walletRepo, mockTime, coremocks.NewMockLogger())

		view, err := service.GetBalance(ctx, 0)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrInvalidVendorID)
		walletRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})

	t.Run("Missing wallet", func(t *testing.T) {
		walletRepo := new(persistencemocks.MockWalletRepository)
		walletRepo.On("GetByUserID", mock.Anything, uint64(55)).Return(nil, errs.ErrWalletNotFound)

		service := NewWalletService(walletRepo, mockTime, coremocks.NewMockLogger())

		view, err := service.GetBalance(ctx, 55)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrWalletNotFound)
	})
}

func TestEnsureWallet(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	t.Run("Wallet already exists", func(t *testing.T) {
		walletRepo := new(persistencemocks.MockWalletRepository)

		existing, err := entity.NewVendorWallet(55, 8500, mockTime)
		require.NoError(t, err)
		walletRepo.On("GetByUserID", mock.Anything, uint64(55)).Return(existing, nil)

		service := NewWalletService(walletRepo, mockTime, coremocks.NewMockLogger())

		w, err := service.EnsureWallet(ctx, 55)

		require.NoError(t, err)
		assert.Equal(t, existing, w)
		walletRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Provisions a fresh empty wallet", func(t *testing.T) {
		walletRepo := new(persistencemocks.MockWalletRepository)
		walletRepo.On("GetByUserID", mock.Anything, uint64(55)).Return(nil, errs.ErrWalletNotFound)
		walletRepo.On("Create", mock.Anything, mock.MatchedBy(func(w *entity.VendorWallet) bool {
			return w.UserID == 55 && w.Balance() == 0
		})).Return(nil)

		service := NewWalletService(walletRepo, mockTime, coremocks.NewMockLogger())

		w, err := service.EnsureWallet(ctx, 55)

		require.NoError(t, err)
		assert.Equal(t, uint64(55), w.UserID)
		assert.Equal(t, "0.00", w.GetBalance())
		walletRepo.AssertExpectations(t)
	})

	t.Run("Lost create race falls back to the winner's row", func(t *testing.T) {
		walletRepo := new(persistencemocks.MockWalletRepository)

		winner, err := entity.NewVendorWallet(55, 100, mockTime)
		require.NoError(t, err)

		walletRepo.On("GetByUserID", mock.Anything, uint64(55)).Return(nil, errs.ErrWalletNotFound).Once()
		walletRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.VendorWallet")).Return(errs.ErrConstraintViolation)
		walletRepo.On("GetByUserID", mock.Anything, uint64(55)).Return(winner, nil).Once()

		service := NewWalletService(walletRepo, mockTime, coremocks.NewMockLogger())

		w, err := service.EnsureWallet(ctx, 55)

		require.NoError(t, err)
		assert.Equal(t, winner, w)
	})

	t.Run("Store failure surfaces", func(t *testing.T) {
		walletRepo := new(persistencemocks.MockWalletRepository)
		walletRepo.On("GetByUserID", mock.Anything, uint64(55)).Return(nil, errs.ErrDatabaseConnection)

		service := NewWalletService(walletRepo, mockTime, coremocks.NewMockLogger())

		w, err := service.EnsureWallet(ctx, 55)

		assert.Nil(t, w)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
