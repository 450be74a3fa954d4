package ledger

import (
	"fmt"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
)

// LedgerValidator provides validation for ledger inputs before they touch
// the store
type LedgerValidator struct{}

// NewLedgerValidator creates a new LedgerValidator
func NewLedgerValidator() *LedgerValidator {
	return &LedgerValidator{}
}

// ValidateCreate validates the input for transaction creation
func (v *LedgerValidator) ValidateCreate(in CreateTransactionInput) error {
	if in.BookingID == 0 {
		return errs.ErrInvalidBookingID
	}

	if in.Amount != nil && *in.Amount < 0 {
		return fmt.Errorf("%w: negative value", errs.ErrInvalidAmount)
	}

	if in.Status != nil && !entity.IsValidStatus(string(*in.Status)) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidStatus, *in.Status)
	}

	if in.Type != "" && !entity.IsValidTransactionType(string(in.Type)) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, in.Type)
	}

	return nil
}

// ValidateUpdate validates the input for a sparse status update
func (v *LedgerValidator) ValidateUpdate(referenceNumber string, update entity.TransactionUpdate) error {
	if referenceNumber == "" {
		return errs.ErrInvalidReference
	}

	if update.Status != nil && !entity.IsValidStatus(string(*update.Status)) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidStatus, *update.Status)
	}

	if update.PaidAmount != nil && *update.PaidAmount < 0 {
		return fmt.Errorf("%w: negative value", errs.ErrInvalidAmount)
	}

	return nil
}

// ValidateRefund validates a refund reconciliation input. The vendor wallet
// is only touched on success, so the vendor id is only required then.
func (v *LedgerValidator) ValidateRefund(in RefundInput) error {
	if in.PaymentID == "" {
		return errs.ErrInvalidReference
	}

	if in.AmountRefunded < 0 {
		return fmt.Errorf("%w: negative value", errs.ErrInvalidAmount)
	}

	if in.Status == entity.RefundStatusSuccess && in.Metadata.VendorID == 0 {
		return errs.ErrInvalidVendorID
	}

	return nil
}
