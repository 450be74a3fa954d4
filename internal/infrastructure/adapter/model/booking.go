package model

import (
	"time"
)

// Booking represents the payment-facing slice of the bookings table. Only the
// payment status mirror and paid amount are owned by this service.
type Booking struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	PaymentStatus string    `gorm:"not null;size:50;default:pending"`
	PaidAmount    int64     `gorm:"not null;default:0"` // Minor units
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}
