package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// BookingRepository implements the BookingRepository port using GORM
type BookingRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewBookingRepository creates a new BookingRepository instance
func NewBookingRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BookingRepository {
	return &BookingRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID retrieves a booking
func (r *BookingRepository) GetByID(ctx context.Context, id uint64) (*entity.Booking, error) {
	var bookingModel model.Booking
	result := r.db.WithContext(ctx).First(&bookingModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Booking not found", map[string]any{
				"booking_id": id,
			})
			return nil, errs.ErrBookingNotFound
		}
		r.logger.Error("Failed to get booking", map[string]any{
			"booking_id": id,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.Booking{
		ID:            bookingModel.ID,
		PaymentStatus: entity.BookingPaymentStatus(bookingModel.PaymentStatus),
		PaidAmount:    bookingModel.PaidAmount,
		CreatedAt:     bookingModel.CreatedAt,
		UpdatedAt:     bookingModel.UpdatedAt,
	}, nil
}

// UpdatePaymentStatus sets the booking's payment status mirror and paid amount
func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID uint64, status entity.BookingPaymentStatus, paidAmountMinor int64) error {
	result := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"payment_status": string(status),
			"paid_amount":    paidAmountMinor,
			"updated_at":     r.timeProvider.Now(),
		})

	if result.Error != nil {
		r.logger.Error("Failed to update booking payment status", map[string]any{
			"booking_id": bookingID,
			"status":     status,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Booking not found during payment status update", map[string]any{
			"booking_id": bookingID,
		})
		return errs.ErrBookingNotFound
	}

	r.logger.Debug("Booking payment status updated", map[string]any{
		"booking_id": bookingID,
		"status":     status,
	})
	return nil
}
