package model

import (
	"time"
)

// RefundTransaction represents the database model for refund lifecycle records.
// One refund record exists per refund transaction.
type RefundTransaction struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	TransactionID uint64 `gorm:"uniqueIndex;not null"`
	ProcessingAt  *time.Time
	CompletedAt   *time.Time
	FailedAt      *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`

	// Define relationships
	Transaction PaymentTransaction `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for RefundTransaction
func (RefundTransaction) TableName() string {
	return "refund_transactions"
}
