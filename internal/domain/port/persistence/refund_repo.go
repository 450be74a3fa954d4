package persistence

import (
	"context"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
)

// RefundRepository defines methods for the one-to-one refund records owned by
// refund-type payment transactions
type RefundRepository interface {
	// Create saves a new refund record for the given transaction
	//
	// Possible errors:
	// - ErrConstraintViolation: If a record already exists for the transaction
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, refund *entity.RefundTransaction) error

	// GetByTransactionID retrieves the refund record owned by the given
	// refund-type transaction
	//
	// Possible errors:
	// - ErrRefundNotFound: If the transaction has no linked refund record
	// - ErrDatabaseConnection: If database connection fails
	GetByTransactionID(ctx context.Context, transactionID uint64) (*entity.RefundTransaction, error)

	// Update persists the lifecycle timestamps of an existing refund record
	//
	// Possible errors:
	// - ErrRefundNotFound: If the record doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, refund *entity.RefundTransaction) error
}
