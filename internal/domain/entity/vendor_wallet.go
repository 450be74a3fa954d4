package entity

import (
	"time"

	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	tport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
)

// VendorWallet is the ledger balance owed to a vendor, adjusted by completed
// bookings and completed refunds. The balance is held in minor units and is
// mutated only through atomic increments at the storage layer, never by
// read-modify-write.
type VendorWallet struct {
	ID        uint64    // Unique identifier for the wallet
	UserID    uint64    // Owning vendor
	balance   int64     // Balance in minor units (private)
	CreatedAt time.Time // When the wallet was created
	UpdatedAt time.Time // When the wallet was last updated
}

// NewVendorWallet creates a wallet for the given vendor with an initial balance
func NewVendorWallet(userID uint64, initialBalance int64, timeProvider tport.TimeProvider) (*VendorWallet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidVendorID
	}

	now := timeProvider.Now()
	return &VendorWallet{
		UserID:    userID,
		balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Balance returns the current balance in minor units (for internal use)
func (w *VendorWallet) Balance() int64 {
	return w.balance
}

// GetBalance returns the balance as a major-unit string with 2 decimal places
func (w *VendorWallet) GetBalance() string {
	return MinorToMajorString(w.balance)
}