package ledger

import (
	"testing"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestValidateCreate(t *testing.T) {
	validator := NewLedgerValidator()

	t.Run("Valid minimal input", func(t *testing.T) {
		assert.NoError(t, validator.ValidateCreate(CreateTransactionInput{BookingID: 42}))
	})

	t.Run("Zero booking ID", func(t *testing.T) {
		err := validator.ValidateCreate(CreateTransactionInput{BookingID: 0})
		assert.ErrorIs(t, err, errs.ErrInvalidBookingID)
	})

	t.Run("Negative amount", func(t *testing.T) {
		amount := int64(-1)
		err := validator.ValidateCreate(CreateTransactionInput{BookingID: 42, Amount: &amount})
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Invalid status", func(t *testing.T) {
		status := entity.TransactionStatus("completed")
		err := validator.ValidateCreate(CreateTransactionInput{BookingID: 42, Status: &status})
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("Invalid type", func(t *testing.T) {
		err := validator.ValidateCreate(CreateTransactionInput{BookingID: 42, Type: "chargeback"})
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
	})
}

func TestValidateUpdate(t *testing.T) {
	validator := NewLedgerValidator()
	succeeded := entity.StatusSucceeded

	t.Run("Valid update", func(t *testing.T) {
		paid := int64(10000)
		err := validator.ValidateUpdate("pi_3abc", entity.TransactionUpdate{Status: &succeeded, PaidAmount: &paid})
		assert.NoError(t, err)
	})

	t.Run("Empty reference", func(t *testing.T) {
		err := validator.ValidateUpdate("", entity.TransactionUpdate{Status: &succeeded})
		assert.ErrorIs(t, err, errs.ErrInvalidReference)
	})

	t.Run("Invalid status", func(t *testing.T) {
		bad := entity.TransactionStatus("done")
		err := validator.ValidateUpdate("pi_3abc", entity.TransactionUpdate{Status: &bad})
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("Negative paid amount", func(t *testing.T) {
		paid := int64(-100)
		err := validator.ValidateUpdate("pi_3abc", entity.TransactionUpdate{PaidAmount: &paid})
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestValidateRefund(t *testing.T) {
	validator := NewLedgerValidator()

	t.Run("Valid success refund", func(t *testing.T) {
		err := validator.ValidateRefund(RefundInput{
			PaymentID:      "pi_3abc",
			Status:         entity.RefundStatusSuccess,
			Metadata:       entity.EventMetadata{VendorID: 55},
			AmountRefunded: 5000,
		})
		assert.NoError(t, err)
	})

	t.Run("Empty payment ID", func(t *testing.T) {
		err := validator.ValidateRefund(RefundInput{Status: entity.RefundStatusProcessing})
		assert.ErrorIs(t, err, errs.ErrInvalidReference)
	})

	t.Run("Negative refunded amount", func(t *testing.T) {
		err := validator.ValidateRefund(RefundInput{PaymentID: "pi_3abc", AmountRefunded: -1})
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Success requires a vendor", func(t *testing.T) {
		err := validator.ValidateRefund(RefundInput{
			PaymentID:      "pi_3abc",
			Status:         entity.RefundStatusSuccess,
			AmountRefunded: 10000,
		})
		assert.ErrorIs(t, err, errs.ErrInvalidVendorID)
	})

	t.Run("Processing does not require a vendor", func(t *testing.T) {
		err := validator.ValidateRefund(RefundInput{
			PaymentID:      "pi_3abc",
			Status:         entity.RefundStatusProcessing,
			AmountRefunded: 10000,
		})
		assert.NoError(t, err)
	})
}
