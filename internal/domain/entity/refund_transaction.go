package entity

import (
	"time"

	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	tport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
)

// RefundTransaction tracks the processor-side lifecycle of a single refund.
// Exactly one exists per refund-type PaymentTransaction. At most one of the
// three timestamps is ever populated; once a terminal timestamp is set the
// record is never re-opened.
type RefundTransaction struct {
	ID            uint64     // Unique identifier for the refund record
	TransactionID uint64     // Owning refund-type payment transaction (one-to-one)
	ProcessingAt  *time.Time // Set when the processor reports the refund as processing
	CompletedAt   *time.Time // Set when the processor confirms the refund succeeded
	FailedAt      *time.Time // Set when the processor reports the refund failed
	CreatedAt     time.Time  // When the refund record was created
	UpdatedAt     time.Time  // When the refund record was last updated
}

// NewRefundTransaction creates a refund record owned by the given transaction
func NewRefundTransaction(transactionID uint64, timeProvider tport.TimeProvider) (*RefundTransaction, error) {
	if transactionID == 0 {
		return nil, errs.ErrInvalidReference
	}

	now := timeProvider.Now()
	return &RefundTransaction{
		TransactionID: transactionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsTerminal reports whether the refund has already reached a final state
func (r *RefundTransaction) IsTerminal() bool {
	return r.CompletedAt != nil || r.FailedAt != nil
}

// MarkProcessing stamps the refund as in-flight at the processor.
// Returns ErrRefundFinalized if a terminal timestamp is already set.
func (r *RefundTransaction) MarkProcessing(timeProvider tport.TimeProvider) error {
	if r.IsTerminal() {
		return errs.ErrRefundFinalized
	}
	now := timeProvider.Now()
	r.ProcessingAt = &now
	r.UpdatedAt = now
	return nil
}

// MarkCompleted stamps the refund as paid out to the customer.
// Returns ErrRefundFinalized if a terminal timestamp is already set.
func (r *RefundTransaction) MarkCompleted(timeProvider tport.TimeProvider) error {
	if r.IsTerminal() {
		return errs.ErrRefundFinalized
	}
	now := timeProvider.Now()
	r.CompletedAt = &now
	r.UpdatedAt = now
	return nil
}

// MarkFailed stamps the refund as rejected by the processor.
// Returns ErrRefundFinalized if a terminal timestamp is already set.
func (r *RefundTransaction) MarkFailed(timeProvider tport.TimeProvider) error {
	if r.IsTerminal() {
		return errs.ErrRefundFinalized
	}
	now := timeProvider.Now()
	r.FailedAt = &now
	r.UpdatedAt = now
	return nil
}
