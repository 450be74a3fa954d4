package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/voyagehub/payment-ledger/internal/domain/entity"
)

// MockBookingRepository is a mock implementation of the BookingRepository interface
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id uint64) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID uint64, status entity.BookingPaymentStatus, paidAmountMinor int64) error {
	args := m.Called(ctx, bookingID, status, paidAmountMinor)
	return args.Error(0)
}
