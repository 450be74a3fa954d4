package model

import (
	"time"
)

// PaymentTransaction represents the database model for ledger transactions
type PaymentTransaction struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	BookingID       uint64    `gorm:"not null;index"`
	ReferenceNumber string    `gorm:"not null;size:255;index:idx_reference_type"`
	Amount          int64     `gorm:"not null"` // Minor units
	Currency        string    `gorm:"not null;size:10"`
	Status          string    `gorm:"not null;size:50"`
	PaidAmount      int64     `gorm:"not null;default:0"` // Minor units
	PaidCurrency    string    `gorm:"size:10"`
	RawStatus       string    `gorm:"size:100"`
	Type            string    `gorm:"not null;size:50;index:idx_reference_type"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for PaymentTransaction
func (PaymentTransaction) TableName() string {
	return "payment_transactions"
}
