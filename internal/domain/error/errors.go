package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeInvalidReference    = 4002
	CodeInvalidBookingID    = 4003
	CodeDuplicateEvent      = 4004
	CodeConstraintViolation = 4005
	CodeInvalidSignature    = 4006
	CodePaymentNotFound     = 4040
	CodeRefundNotFound      = 4041
	CodeWalletNotFound      = 4042
	CodeBookingNotFound     = 4043

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when a monetary amount is negative or malformed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidReference is returned when the reference number is empty or invalid
	ErrInvalidReference = errors.New("reference number cannot be empty")

	// ErrInvalidBookingID is returned when the booking ID is not a positive integer
	ErrInvalidBookingID = errors.New("booking ID must be positive")

	// ErrInvalidVendorID is returned when the vendor ID in webhook metadata is missing or zero
	ErrInvalidVendorID = errors.New("vendor ID must be positive")

	// ErrInvalidTransactionType is returned when the transaction type is not one of the allowed values
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidStatus is returned when the transaction status is not one of the allowed values
	ErrInvalidStatus = errors.New("invalid transaction status")

	// ErrPaymentNotFound is returned when no payment transaction matches the given reference
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrRefundNotFound is returned when a refund-type transaction has no linked refund record
	ErrRefundNotFound = errors.New("refund transaction not found for this payment")

	// ErrWalletNotFound is returned when no wallet exists for the given vendor
	ErrWalletNotFound = errors.New("vendor wallet not found")

	// ErrBookingNotFound is returned when the referenced booking doesn't exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrDuplicateEvent is returned when a webhook event with the same ID was already recorded
	ErrDuplicateEvent = errors.New("webhook event already processed")

	// ErrRefundFinalized is returned when a refund record already carries a terminal timestamp
	ErrRefundFinalized = errors.New("refund already finalized")

	// ErrInvalidSignature is returned when webhook signature verification fails
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidReference):
		return CodeInvalidReference
	case errors.Is(err, ErrInvalidBookingID):
		return CodeInvalidBookingID
	case errors.Is(err, ErrDuplicateEvent):
		return CodeDuplicateEvent
	case errors.Is(err, ErrInvalidSignature):
		return CodeInvalidSignature
	case errors.Is(err, ErrPaymentNotFound):
		return CodePaymentNotFound
	case errors.Is(err, ErrRefundNotFound):
		return CodeRefundNotFound
	case errors.Is(err, ErrWalletNotFound):
		return CodeWalletNotFound
	case errors.Is(err, ErrBookingNotFound):
		return CodeBookingNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// ReconciliationError represents an error raised while reconciling a webhook event
type ReconciliationError struct {
	EventID   string
	EventType string
	Reference string
	Err       error
}

// Error implements the error interface for ReconciliationError
func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconciliation failed for event %s (type: %s, reference: %s): %v",
		e.EventID, e.EventType, e.Reference, e.Err)
}

// Unwrap returns the underlying error
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ReconciliationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "reconciliation_error",
		"event_id":   e.EventID,
		"event_type": e.EventType,
		"reference":  e.Reference,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewReconciliationError creates a detailed reconciliation error
func NewReconciliationError(eventID, eventType, reference string, err error) error {
	return &ReconciliationError{
		EventID:   eventID,
		EventType: eventType,
		Reference: reference,
		Err:       err,
	}
}

// WalletError represents an error related to vendor wallet operations
type WalletError struct {
	VendorID uint64
	Amount   int64
	Err      error
}

// Error implements the error interface for WalletError
func (e *WalletError) Error() string {
	return fmt.Sprintf("wallet operation failed for vendor %d (amount: %d): %v",
		e.VendorID, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *WalletError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *WalletError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "wallet_error",
		"vendor_id":  e.VendorID,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewWalletError creates a new detailed wallet error
func NewWalletError(vendorID uint64, amount int64, err error) error {
	return &WalletError{
		VendorID: vendorID,
		Amount:   amount,
		Err:      err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrRefundNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrBookingNotFound)
}
