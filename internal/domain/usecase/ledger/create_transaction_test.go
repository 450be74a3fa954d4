package ledger

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

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	type fixture struct {
		uow        *persistencemocks.MockUnitOfWork
		txRepo     *persistencemocks.MockTransactionRepository
		refundRepo *persistencemocks.MockRefundRepository
		creator    *TransactionCreator
	}

	newFixture := func() *fixture {
		uow := new(persistencemocks.MockUnitOfWork)
		txRepo := new(persistencemocks.MockTransactionRepository)
		refundRepo := new(persistencemocks.MockRefundRepository)

		uow.On("GetTransactionRepository", mock.Anything).Return(txRepo)
		uow.On("GetRefundRepository", mock.Anything).Return(refundRepo)

		return &fixture{
			uow:        uow,
			txRepo:     txRepo,
			refundRepo: refundRepo,
			creator:    NewTransactionCreator(uow, mockTime, coremocks.NewMockLogger()),
		}
	}

	t.Run("Full input", func(t *testing.T) {
		f := newFixture()
		f.txRepo.On("Create", mock.Anything, mock.MatchedBy(func(txn *entity.PaymentTransaction) bool {
			return txn.BookingID == 42 &&
				txn.ReferenceNumber == "pi_3abc" &&
				txn.Amount == 10000 &&
				txn.Currency == "usd" &&
				txn.Status == entity.StatusProcessing &&
				txn.Type == entity.TypePayment
		})).Return(nil)

		amount := int64(10000)
		currency := "usd"
		reference := "pi_3abc"
		status := entity.StatusProcessing

		txn, err := f.creator.Create(ctx, CreateTransactionInput{
			BookingID:       42,
			Amount:          &amount,
			Currency:        &currency,
			ReferenceNumber: &reference,
			Status:          &status,
			Type:            entity.TypePayment,
		})

		require.NoError(t, err)
		assert.Equal(t, "pi_3abc", txn.ReferenceNumber)
		assert.Equal(t, entity.StatusProcessing, txn.Status)
		f.txRepo.AssertExpectations(t)
		// Payment transactions never get a refund lifecycle record
		f.refundRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Defaults fill absent fields", func(t *testing.T) {
		f := newFixture()
		f.txRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.PaymentTransaction")).Return(nil)

		txn, err := f.creator.Create(ctx, CreateTransactionInput{BookingID: 42})

		require.NoError(t, err)
		assert.Equal(t, entity.TypePayment, txn.Type)
		assert.Equal(t, entity.StatusPending, txn.Status)
		assert.Equal(t, int64(0), txn.Amount)
		// An absent reference gets a generated identifier
		assert.NotEmpty(t, txn.ReferenceNumber)
	})

	t.Run("Refund transaction creates its refund record", func(t *testing.T) {
		f := newFixture()
		f.txRepo.On("Create", mock.Anything, mock.MatchedBy(func(txn *entity.PaymentTransaction) bool {
			return txn.Type == entity.TypeRefund && txn.ReferenceNumber == "pi_3abc_refund"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.PaymentTransaction).ID = 9
		}).Return(nil)
		f.refundRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.RefundTransaction) bool {
			return r.TransactionID == 9 && !r.IsTerminal()
		})).Return(nil)

		reference := entity.RefundReference("pi_3abc")
		amount := int64(5000)

		txn, err := f.creator.Create(ctx, CreateTransactionInput{
			BookingID:       42,
			Amount:          &amount,
			ReferenceNumber: &reference,
			Type:            entity.TypeRefund,
		})

		require.NoError(t, err)
		assert.True(t, txn.IsRefund())
		f.txRepo.AssertExpectations(t)
		f.refundRepo.AssertExpectations(t)
	})

	t.Run("Duplicate refund record surfaces", func(t *testing.T) {
		f := newFixture()
		f.txRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.PaymentTransaction")).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.PaymentTransaction).ID = 9
		}).Return(nil)
		f.refundRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.RefundTransaction")).Return(errs.ErrConstraintViolation)

		reference := entity.RefundReference("pi_3abc")

		txn, err := f.creator.Create(ctx, CreateTransactionInput{
			BookingID:       42,
			ReferenceNumber: &reference,
			Type:            entity.TypeRefund,
		})

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("Zero booking ID rejected", func(t *testing.T) {
		f := newFixture()

		txn, err := f.creator.Create(ctx, CreateTransactionInput{BookingID: 0})

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidBookingID)
		f.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Store constraint violation surfaces", func(t *testing.T) {
		f := newFixture()
		f.txRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.PaymentTransaction")).Return(errs.ErrConstraintViolation)

		txn, err := f.creator.Create(ctx, CreateTransactionInput{BookingID: 42})

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})
}

func TestServiceCreateTransaction(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	txCtx := context.WithValue(ctx, txKey, "mockTransaction")

	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	t.Run("Refund and its record commit in one transaction", func(t *testing.T) {
		uow := new(persistencemocks.MockUnitOfWork)
		txRepo := new(persistencemocks.MockTransactionRepository)
		refundRepo := new(persistencemocks.MockRefundRepository)

		uow.On("GetTransactionRepository", txCtx).Return(txRepo)
		uow.On("GetRefundRepository", txCtx).Return(refundRepo)
		uow.On("Begin", mock.Anything).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)

		txRepo.On("Create", txCtx, mock.AnythingOfType("*entity.PaymentTransaction")).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.PaymentTransaction).ID = 9
		}).Return(nil)
		refundRepo.On("Create", txCtx, mock.MatchedBy(func(r *entity.RefundTransaction) bool {
			return r.TransactionID == 9
		})).Return(nil)

		service := NewLedgerService(uow, mockTime, coremocks.NewMockLogger(), Config{CommissionRatePercent: 15})

		reference := entity.RefundReference("pi_3abc")
		txn, err := service.CreateTransaction(ctx, CreateTransactionInput{
			BookingID:       42,
			ReferenceNumber: &reference,
			Type:            entity.TypeRefund,
		})

		require.NoError(t, err)
		assert.True(t, txn.IsRefund())
		uow.AssertCalled(t, "Commit", txCtx)
		refundRepo.AssertExpectations(t)
	})

	t.Run("Store failure rolls back", func(t *testing.T) {
		uow := new(persistencemocks.MockUnitOfWork)
		txRepo := new(persistencemocks.MockTransactionRepository)

		uow.On("GetTransactionRepository", txCtx).Return(txRepo)
		uow.On("Begin", mock.Anything).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)

		txRepo.On("Create", txCtx, mock.AnythingOfType("*entity.PaymentTransaction")).Return(errs.ErrDatabaseConnection)

		service := NewLedgerService(uow, mockTime, coremocks.NewMockLogger(), Config{CommissionRatePercent: 15})

		txn, err := service.CreateTransaction(ctx, CreateTransactionInput{BookingID: 42})

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		uow.AssertCalled(t, "Rollback", txCtx)
		uow.AssertNotCalled(t, "Commit", txCtx)
	})

	t.Run("Validation failure never opens a transaction", func(t *testing.T) {
		uow := new(persistencemocks.MockUnitOfWork)

		service := NewLedgerService(uow, mockTime, coremocks.NewMockLogger(), Config{CommissionRatePercent: 15})

		txn, err := service.CreateTransaction(ctx, CreateTransactionInput{BookingID: 0})

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidBookingID)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}
