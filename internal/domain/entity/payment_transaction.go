package entity

import (
	"fmt"
	"time"

	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	tport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
)

// TransactionType distinguishes an ordinary payment from a refund record
type TransactionType string

// Transaction types
const (
	TypePayment TransactionType = "payment"
	TypeRefund  TransactionType = "refund"
)

// TransactionStatus defines possible lifecycle states for a payment transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending    TransactionStatus = "pending"
	StatusProcessing TransactionStatus = "processing"
	StatusSucceeded  TransactionStatus = "succeeded"
	StatusFailed     TransactionStatus = "failed"
)

// RefundReferenceSuffix is appended to a payment's identifier to derive the
// reference number of its refund transaction, linking the two without a
// foreign key.
const RefundReferenceSuffix = "_refund"

// PaymentTransaction records a payment or refund against a booking.
// Amounts are minor units. Rows are never hard-deleted; the table is the
// financial audit trail.
type PaymentTransaction struct {
	ID              uint64            // Unique identifier for the transaction
	BookingID       uint64            // ID of the booking this transaction belongs to
	ReferenceNumber string            // Processor-issued payment intent identifier (join key for webhooks)
	Amount          int64             // Requested amount in minor units
	Currency        string            // ISO currency code of the requested amount
	Status          TransactionStatus // Lifecycle state
	PaidAmount      int64             // Amount actually captured by the processor, minor units
	PaidCurrency    string            // Currency the processor settled in
	RawStatus       string            // Verbatim processor status string, preserved for audit
	Type            TransactionType   // payment or refund
	CreatedAt       time.Time         // When the transaction was created
	UpdatedAt       time.Time         // When the transaction was last updated
}

// NewPaymentTransaction creates a new pending transaction with basic validation
func NewPaymentTransaction(
	bookingID uint64,
	referenceNumber string,
	amount int64,
	currency string,
	txType TransactionType,
	timeProvider tport.TimeProvider,
) (*PaymentTransaction, error) {
	if bookingID == 0 {
		return nil, errs.ErrInvalidBookingID
	}
	if referenceNumber == "" {
		return nil, errs.ErrInvalidReference
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: negative value", errs.ErrInvalidAmount)
	}
	if !IsValidTransactionType(string(txType)) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}

	now := timeProvider.Now()
	return &PaymentTransaction{
		BookingID:       bookingID,
		ReferenceNumber: referenceNumber,
		Amount:          amount,
		Currency:        currency,
		Status:          StatusPending,
		Type:            txType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// RefundReference derives the reference number a refund transaction carries
// for the payment identified by id.
func RefundReference(id string) string {
	return id + RefundReferenceSuffix
}

// IsRefund returns true if this is a refund-type transaction
func (t *PaymentTransaction) IsRefund() bool {
	return t.Type == TypeRefund
}

// TransactionUpdate carries the optional fields of a sparse status update.
// A nil field is left untouched at the store; a set field is written.
type TransactionUpdate struct {
	Status       *TransactionStatus
	PaidAmount   *int64
	PaidCurrency *string
	RawStatus    *string
}

// IsEmpty reports whether the update would touch no fields
func (u TransactionUpdate) IsEmpty() bool {
	return u.Status == nil && u.PaidAmount == nil && u.PaidCurrency == nil && u.RawStatus == nil
}

// Helper functions

// IsValidTransactionType validates if the transaction type is allowed
func IsValidTransactionType(txType string) bool {
	return txType == string(TypePayment) || txType == string(TypeRefund)
}

// IsValidStatus validates if the status is allowed
func IsValidStatus(status string) bool {
	return status == string(StatusPending) ||
		status == string(StatusProcessing) ||
		status == string(StatusSucceeded) ||
		status == string(StatusFailed)
}
