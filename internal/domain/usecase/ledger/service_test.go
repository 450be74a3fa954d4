package ledger

import (
	"context"
	"errors"
	"net/http"
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

// contextKey mirrors the transactional context key used by the unit of work
type contextKey string

const txKey contextKey = "tx"

func TestHandleWebhookEvent(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	vendorID := uint64(55)

	cfg := Config{
		CommissionRatePercent: 15,
		SyncBookingStatus:     false,
		CreditVendorOnSuccess: true,
	}

	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	type fixture struct {
		uow       *persistencemocks.MockUnitOfWork
		txRepo    *persistencemocks.MockTransactionRepository
		eventRepo *persistencemocks.MockWebhookEventRepository
		service   *Service
		txCtx     context.Context
	}

	newFixture := func(c Config) *fixture {
		uow := new(persistencemocks.MockUnitOfWork)
		txRepo := new(persistencemocks.MockTransactionRepository)
		eventRepo := new(persistencemocks.MockWebhookEventRepository)
		txCtx := context.WithValue(ctx, txKey, "mockTransaction")

		uow.On("GetTransactionRepository", mock.Anything).Return(txRepo)
		uow.On("GetWebhookEventRepository", mock.Anything).Return(eventRepo)

		service := NewLedgerService(uow, mockTime, coremocks.NewMockLogger(), c)

		return &fixture{
			uow:       uow,
			txRepo:    txRepo,
			eventRepo: eventRepo,
			service:   service,
			txCtx:     txCtx,
		}
	}

	t.Run("Duplicate event is acknowledged without effect", func(t *testing.T) {
		f := newFixture(cfg)
		f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.eventRepo.On("Record", mock.Anything, "evt_1", entity.EventPaymentSucceeded).Return(true, nil)

		result, err := f.service.HandleWebhookEvent(ctx, &entity.WebhookEvent{
			ID:   "evt_1",
			Type: entity.EventPaymentSucceeded,
		})

		require.NoError(t, err)
		assert.True(t, result.Received)
		assert.True(t, result.Success)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		f.txRepo.AssertNotCalled(t, "UpdateByReference", mock.Anything, mock.Anything, mock.Anything)
		f.uow.AssertCalled(t, "Commit", f.txCtx)
	})

	t.Run("Payment succeeded updates the ledger and credits the vendor", func(t *testing.T) {
		f := newFixture(cfg)
		walletRepo := new(persistencemocks.MockWalletRepository)
		f.uow.On("GetWalletRepository", mock.Anything).Return(walletRepo)
		f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.eventRepo.On("Record", mock.Anything, "evt_2", entity.EventPaymentSucceeded).Return(false, nil)

		f.txRepo.On("UpdateByReference", mock.Anything, "pi_3abc", mock.MatchedBy(func(u entity.TransactionUpdate) bool {
			return u.Status != nil && *u.Status == entity.StatusSucceeded &&
				u.PaidAmount != nil && *u.PaidAmount == 10000 &&
				u.PaidCurrency != nil && *u.PaidCurrency == "usd"
		})).Return(int64(1), nil)

		// 100.00 minus 15% commission credits 85.00
		walletRepo.On("Credit", mock.Anything, vendorID, int64(8500)).Return(nil)

		result, err := f.service.HandleWebhookEvent(ctx, &entity.WebhookEvent{
			ID:       "evt_2",
			Type:     entity.EventPaymentSucceeded,
			ObjectID: "pi_3abc",
			Status:   "succeeded",
			Amount:   10000,
			Currency: "usd",
			Metadata: entity.EventMetadata{VendorID: vendorID},
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		walletRepo.AssertExpectations(t)
	})

	t.Run("Vendor credit disabled by config", func(t *testing.T) {
		disabled := cfg
		disabled.CreditVendorOnSuccess = false

		f := newFixture(disabled)
		f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.eventRepo.On("Record", mock.Anything, "evt_3", entity.EventPaymentSucceeded).Return(false, nil)
		f.txRepo.On("UpdateByReference", mock.Anything, "pi_3abc", mock.Anything).Return(int64(1), nil)

		result, err := f.service.HandleWebhookEvent(ctx, &entity.WebhookEvent{
			ID:       "evt_3",
			Type:     entity.EventPaymentSucceeded,
			ObjectID: "pi_3abc",
			Amount:   10000,
			Metadata: entity.EventMetadata{VendorID: vendorID},
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		f.uow.AssertNotCalled(t, "GetWalletRepository", mock.Anything)
	})

	t.Run("Payment failed never touches the wallet", func(t *testing.T) {
		f := newFixture(cfg)
		f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.eventRepo.On("Record", mock.Anything, "evt_4", entity.EventPaymentFailed).Return(false, nil)

		f.txRepo.On("UpdateByReference", mock.Anything, "pi_3abc", mock.MatchedBy(func(u entity.TransactionUpdate) bool {
			return u.Status != nil && *u.Status == entity.StatusFailed && u.PaidAmount == nil
		})).Return(int64(1), nil)

		result, err := f.service.HandleWebhookEvent(ctx, &entity.WebhookEvent{
			ID:       "evt_4",
			Type:     entity.EventPaymentFailed,
			ObjectID: "pi_3abc",
			Status:   "requires_payment_method",
			Amount:   10000,
			Metadata: entity.EventMetadata{VendorID: vendorID},
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		f.uow.AssertNotCalled(t, "GetWalletRepository", mock.Anything)
	})

	t.Run("Payment event matching no rows skips the credit", func(t *testing.T) {
		f := newFixture(cfg)
		f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.eventRepo.On("Record", mock.Anything, "evt_5", entity.EventPaymentSucceeded).Return(false, nil)
		f.txRepo.On("UpdateByReference", mock.Anything, "pi_unknown", mock.Anything).Return(int64(0), nil)

		result, err := f.service.HandleWebhookEvent(ctx, &entity.WebhookEvent{
			ID:       "evt_5",
			Type:     entity.EventPaymentSucceeded,
			ObjectID: "pi_unknown",
			Amount:   10000,
			Metadata: entity.EventMetadata{VendorID: vendorID},
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		f.uow.AssertNotCalled(t, "GetWalletRepository", mock.Anything)
	})

	t.Run("Refund event reconciles through the refund lifecycle", func(t *testing.T) {
		f := newFixture(cfg)
		refundRepo := new(persistencemocks.MockRefundRepository)
		walletRepo := new(persistencemocks.MockWalletRepository)
		f.uow.On("GetRefundRepository", mock.Anything).Return(refundRepo)
		f.uow.On("GetWalletRepository", mock.Anything).Return(walletRepo)
		f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.eventRepo.On("Record", mock.Anything, "evt_6", entity.EventRefundUpdated).Return(false, nil)

		refundTxn := &entity.PaymentTransaction{ID: 9, BookingID: 42, ReferenceNumber: "pi_3abc_refund", Type: entity.TypeRefund}
		paymentTxn := &entity.PaymentTransaction{ID: 7, BookingID: 42, ReferenceNumber: "pi_3abc", Amount: 10000, Type: entity.TypePayment}
		f.txRepo.On("GetByReferenceAndType", mock.Anything, "pi_3abc_refund", entity.TypeRefund).Return(refundTxn, nil)
		f.txRepo.On("GetByReferenceAndType", mock.Anything, "pi_3abc", entity.TypePayment).Return(paymentTxn, nil)
		refundRepo.On("GetByTransactionID", mock.Anything, uint64(9)).Return(&entity.RefundTransaction{ID: 3, TransactionID: 9}, nil)
		// Partial refund of the 10000 charge, net of 15% commission
		walletRepo.On("Debit", mock.Anything, vendorID, int64(4250)).Return(nil)
		refundRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.RefundTransaction")).Return(nil)

		result, err := f.service.HandleWebhookEvent(ctx, &entity.WebhookEvent{
			ID:             "evt_6",
			Type:           entity.EventRefundUpdated,
			ObjectID:       "pi_3abc",
			Status:         entity.RefundStatusSuccess,
			AmountRefunded: 5000,
			Metadata:       entity.EventMetadata{VendorID: vendorID},
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		walletRepo.AssertExpectations(t)
	})

	t.Run("Refund for unknown payment acknowledges without success", func(t *testing.T) {
		f := newFixture(cfg)
		refundRepo := new(persistencemocks.MockRefundRepository)
		f.uow.On("GetRefundRepository", mock.Anything).Return(refundRepo)
		f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
		f.uow.On("Rollback", f.txCtx).Return(nil)
		f.eventRepo.On("Record", mock.Anything, "evt_7", entity.EventRefundUpdated).Return(false, nil)
		f.txRepo.On("GetByReferenceAndType", mock.Anything, "pi_unknown_refund", entity.TypeRefund).Return(nil, errs.ErrPaymentNotFound)

		result, err := f.service.HandleWebhookEvent(ctx, &entity.WebhookEvent{
			ID:             "evt_7",
			Type:           entity.EventRefundUpdated,
			ObjectID:       "pi_unknown",
			Status:         entity.RefundStatusSuccess,
			AmountRefunded: 10000,
			Metadata:       entity.EventMetadata{VendorID: vendorID},
		})

		require.NoError(t, err)
		assert.True(t, result.Received)
		assert.False(t, result.Success)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		f.uow.AssertCalled(t, "Rollback", f.txCtx)
		f.uow.AssertNotCalled(t, "Commit", f.txCtx)
	})

	t.Run("Refund success without vendor id acknowledges without success", func(t *testing.T) {
		f := newFixture(cfg)
		f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
		f.uow.On("Rollback", f.txCtx).Return(nil)
		f.eventRepo.On("Record", mock.Anything, "evt_8", entity.EventRefundUpdated).Return(false, nil)

		// Missing vendor metadata can never be repaired by a redelivery, so
		// the event is acknowledged instead of retried
		result, err := f.service.HandleWebhookEvent(ctx, &entity.WebhookEvent{
			ID:             "evt_8",
			Type:           entity.EventRefundUpdated,
			ObjectID:       "pi_3abc",
			Status:         entity.RefundStatusSuccess,
			AmountRefunded: 10000,
		})

		require.NoError(t, err)
		assert.True(t, result.Received)
		assert.False(t, result.Success)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		f.uow.AssertCalled(t, "Rollback", f.txCtx)
		f.uow.AssertNotCalled(t, "Commit", f.txCtx)
		f.txRepo.AssertNotCalled(t, "GetByReferenceAndType", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown event type is acknowledged", func(t *testing.T) {
		f := newFixture(cfg)
		f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
		f.uow.On("Commit", f.txCtx).Return(nil)
		f.eventRepo.On("Record", mock.Anything, "evt_9", "customer.created").Return(false, nil)

		result, err := f.service.HandleWebhookEvent(ctx, &entity.WebhookEvent{
			ID:   "evt_9",
			Type: "customer.created",
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		f.txRepo.AssertNotCalled(t, "UpdateByReference", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Begin failure is an internal error", func(t *testing.T) {
		f := newFixture(cfg)
		dbErr := errors.New("connection refused")
		f.uow.On("Begin", mock.Anything).Return(nil, dbErr)

		result, err := f.service.HandleWebhookEvent(ctx, &entity.WebhookEvent{
			ID:   "evt_10",
			Type: entity.EventPaymentSucceeded,
		})

		assert.Equal(t, dbErr, err)
		assert.False(t, result.Received)
		assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	})

	t.Run("Dedup failure rolls back", func(t *testing.T) {
		f := newFixture(cfg)
		f.uow.On("Begin", mock.Anything).Return(f.txCtx, nil)
		f.uow.On("Rollback", f.txCtx).Return(nil)
		f.eventRepo.On("Record", mock.Anything, "evt_11", entity.EventPaymentSucceeded).Return(false, errs.ErrDatabaseConnection)

		result, err := f.service.HandleWebhookEvent(ctx, &entity.WebhookEvent{
			ID:   "evt_11",
			Type: entity.EventPaymentSucceeded,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
		f.uow.AssertCalled(t, "Rollback", f.txCtx)
	})
}

func TestStatusForPaymentEvent(t *testing.T) {
	assert.Equal(t, entity.StatusSucceeded, statusForPaymentEvent(entity.EventPaymentSucceeded))
	assert.Equal(t, entity.StatusProcessing, statusForPaymentEvent(entity.EventPaymentProcessing))
	assert.Equal(t, entity.StatusFailed, statusForPaymentEvent(entity.EventPaymentFailed))
	assert.Equal(t, entity.StatusFailed, statusForPaymentEvent("payment_intent.canceled"))
}
