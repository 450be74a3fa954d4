package ledger

import (
	"context"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	"github.com/voyagehub/payment-ledger/internal/domain/port/persistence"
)

// UpdateResult reports the outcome of a sparse status update
type UpdateResult struct {
	RowsAffected    int64
	BookingsUpdated int
}

// TransactionUpdater applies sparse status updates to every transaction
// matching a reference number, optionally cascading the payment status onto
// the owning bookings.
type TransactionUpdater struct {
	uow               persistence.UnitOfWork
	logger            coreport.Logger
	syncBookingStatus bool
}

// NewTransactionUpdater creates a new TransactionUpdater
func NewTransactionUpdater(
	uow persistence.UnitOfWork,
	logger coreport.Logger,
	syncBookingStatus bool,
) *TransactionUpdater {
	return &TransactionUpdater{
		uow:               uow,
		logger:            logger,
		syncBookingStatus: syncBookingStatus,
	}
}

// Apply performs the bulk sparse update. Zero matching rows is a no-op
// returning zero affected rows, not an error. When the booking cascade is
// enabled and the update carries a status, each distinct booking behind the
// matched rows gets its payment status mirror and paid amount refreshed.
func (u *TransactionUpdater) Apply(
	ctx context.Context,
	referenceNumber string,
	update entity.TransactionUpdate,
) (*UpdateResult, error) {
	transactionRepo := u.uow.GetTransactionRepository(ctx)

	rows, err := transactionRepo.UpdateByReference(ctx, referenceNumber, update)
	if err != nil {
		return nil, err
	}

	result := &UpdateResult{RowsAffected: rows}

	if rows == 0 {
		u.logger.Debug("No transactions matched reference, skipping update", map[string]any{
			"reference": referenceNumber,
		})
		return result, nil
	}

	u.logger.Info("Transactions updated", map[string]any{
		"reference":     referenceNumber,
		"rows_affected": rows,
	})

	if !u.syncBookingStatus || update.Status == nil {
		return result, nil
	}

	updated, err := u.cascadeToBookings(ctx, referenceNumber, *update.Status, update.PaidAmount)
	if err != nil {
		return nil, err
	}
	result.BookingsUpdated = updated

	return result, nil
}

// cascadeToBookings mirrors the new status (and paid amount, when supplied)
// onto each distinct booking behind the matched transactions
func (u *TransactionUpdater) cascadeToBookings(
	ctx context.Context,
	referenceNumber string,
	status entity.TransactionStatus,
	paidAmount *int64,
) (int, error) {
	transactionRepo := u.uow.GetTransactionRepository(ctx)
	bookingRepo := u.uow.GetBookingRepository(ctx)

	transactions, err := transactionRepo.ListByReference(ctx, referenceNumber)
	if err != nil {
		return 0, err
	}

	bookingStatus := entity.PaymentStatusFor(status)
	seen := make(map[uint64]bool, len(transactions))
	updated := 0

	for _, txn := range transactions {
		if seen[txn.BookingID] {
			continue
		}
		seen[txn.BookingID] = true

		paid := txn.PaidAmount
		if paidAmount != nil {
			paid = *paidAmount
		}

		if err := bookingRepo.UpdatePaymentStatus(ctx, txn.BookingID, bookingStatus, paid); err != nil {
			return updated, err
		}
		updated++

		u.logger.Debug("Booking payment status mirrored", map[string]any{
			"booking_id":     txn.BookingID,
			"payment_status": bookingStatus,
			"paid_amount":    paid,
		})
	}

	return updated, nil
}
