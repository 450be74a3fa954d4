package entity

import "time"

// BookingPaymentStatus mirrors the latest payment transaction status onto the
// booking when the cascade is enabled.
type BookingPaymentStatus string

// Booking payment statuses
const (
	BookingPaymentPending    BookingPaymentStatus = "pending"
	BookingPaymentProcessing BookingPaymentStatus = "processing"
	BookingPaymentPaid       BookingPaymentStatus = "paid"
	BookingPaymentFailed     BookingPaymentStatus = "failed"
)

// Booking is the slice of the marketplace booking the ledger needs: the
// payment status mirror and the running paid amount. The rest of the booking
// lives outside this service.
type Booking struct {
	ID            uint64               // Unique identifier for the booking
	PaymentStatus BookingPaymentStatus // Mirror of the latest transaction status
	PaidAmount    int64                // Total captured for this booking, minor units
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PaymentStatusFor maps a transaction status to the booking-side mirror value
func PaymentStatusFor(status TransactionStatus) BookingPaymentStatus {
	switch status {
	case StatusSucceeded:
		return BookingPaymentPaid
	case StatusProcessing:
		return BookingPaymentProcessing
	case StatusFailed:
		return BookingPaymentFailed
	default:
		return BookingPaymentPending
	}
}
