package model

import (
	"time"
)

// VendorWallet represents the database model for vendor wallet balances
type VendorWallet struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"uniqueIndex;not null"`
	Balance   int64     `gorm:"not null;default:0"` // Balance in minor units
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for VendorWallet
func (VendorWallet) TableName() string {
	return "vendor_wallets"
}
