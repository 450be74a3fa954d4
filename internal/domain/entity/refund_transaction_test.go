package entity

import (
	"testing"
	"time"

	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	coremocks "github.com/voyagehub/payment-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefundTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	t.Run("Valid refund record", func(t *testing.T) {
		refund, err := NewRefundTransaction(7, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), refund.TransactionID)
		assert.Nil(t, refund.ProcessingAt)
		assert.Nil(t, refund.CompletedAt)
		assert.Nil(t, refund.FailedAt)
		assert.False(t, refund.IsTerminal())
		assert.Equal(t, fixedTime, refund.CreatedAt)
	})

	t.Run("Zero transaction ID", func(t *testing.T) {
		refund, err := NewRefundTransaction(0, mockTime)

		assert.Nil(t, refund)
		assert.ErrorIs(t, err, errs.ErrInvalidReference)
	})
}

func TestRefundLifecycle(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := new(coremocks.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	newRefund := func(t *testing.T) *RefundTransaction {
		refund, err := NewRefundTransaction(7, mockTime)
		require.NoError(t, err)
		return refund
	}

	t.Run("MarkProcessing is not terminal", func(t *testing.T) {
		refund := newRefund(t)

		require.NoError(t, refund.MarkProcessing(mockTime))
		assert.NotNil(t, refund.ProcessingAt)
		assert.False(t, refund.IsTerminal())

		// A processing refund can still complete
		require.NoError(t, refund.MarkCompleted(mockTime))
		assert.True(t, refund.IsTerminal())
	})

	t.Run("MarkCompleted is terminal", func(t *testing.T) {
		refund := newRefund(t)

		require.NoError(t, refund.MarkCompleted(mockTime))
		assert.Equal(t, fixedTime, *refund.CompletedAt)
		assert.True(t, refund.IsTerminal())

		assert.ErrorIs(t, refund.MarkProcessing(mockTime), errs.ErrRefundFinalized)
		assert.ErrorIs(t, refund.MarkCompleted(mockTime), errs.ErrRefundFinalized)
		assert.ErrorIs(t, refund.MarkFailed(mockTime), errs.ErrRefundFinalized)
	})

	t.Run("MarkFailed is terminal", func(t *testing.T) {
		refund := newRefund(t)

		require.NoError(t, refund.MarkFailed(mockTime))
		assert.Equal(t, fixedTime, *refund.FailedAt)
		assert.True(t, refund.IsTerminal())

		assert.ErrorIs(t, refund.MarkCompleted(mockTime), errs.ErrRefundFinalized)
	})
}
