package persistence

import (
	"context"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
)

// BookingRepository defines the slice of booking persistence the ledger
// touches: mirroring payment state onto the owning booking
type BookingRepository interface {
	// GetByID retrieves a booking
	//
	// Possible errors:
	// - ErrBookingNotFound: If the booking doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Booking, error)

	// UpdatePaymentStatus sets the booking's payment status mirror and its
	// running paid amount
	//
	// Possible errors:
	// - ErrBookingNotFound: If the booking doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdatePaymentStatus(ctx context.Context, bookingID uint64, status entity.BookingPaymentStatus, paidAmountMinor int64) error
}
