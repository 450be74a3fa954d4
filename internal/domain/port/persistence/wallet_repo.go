package persistence

import (
	"context"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
)

// WalletRepository defines methods for vendor wallet balances.
// Balance changes go through Credit/Debit, which must be implemented as a
// single atomic increment at the store so concurrent adjustments never lose
// updates.
type WalletRepository interface {
	// GetByUserID retrieves the wallet owned by the given vendor
	//
	// Possible errors:
	// - ErrWalletNotFound: If no wallet exists for the vendor
	// - ErrDatabaseConnection: If database connection fails
	GetByUserID(ctx context.Context, userID uint64) (*entity.VendorWallet, error)

	// Create creates a wallet for a vendor
	//
	// Possible errors:
	// - ErrConstraintViolation: If the vendor already has a wallet
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, wallet *entity.VendorWallet) error

	// Credit atomically adds amountMinor to the vendor's balance
	//
	// Possible errors:
	// - ErrWalletNotFound: If no wallet exists for the vendor
	// - ErrDatabaseConnection: If database connection fails
	Credit(ctx context.Context, userID uint64, amountMinor int64) error

	// Debit atomically subtracts amountMinor from the vendor's balance.
	// Used by refund reconciliation to claw back funds already credited.
	//
	// Possible errors:
	// - ErrWalletNotFound: If no wallet exists for the vendor
	// - ErrDatabaseConnection: If database connection fails
	Debit(ctx context.Context, userID uint64, amountMinor int64) error
}
