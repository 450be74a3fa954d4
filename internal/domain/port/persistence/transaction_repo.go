package persistence

import (
	"context"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with payment transaction data
type TransactionRepository interface {
	// Create saves a new payment transaction
	//
	// Possible errors:
	// - ErrConstraintViolation: If the row violates a database constraint
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.PaymentTransaction) error

	// UpdateByReference applies a sparse field update to every transaction
	// matching the given reference number. A reference is not assumed unique
	// at this call site; all matching rows are updated in one statement.
	// Returns the number of rows affected; zero matches is a no-op, not an
	// error.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	UpdateByReference(ctx context.Context, referenceNumber string, update entity.TransactionUpdate) (int64, error)

	// GetByReference retrieves the first transaction matching the reference
	// number
	//
	// Possible errors:
	// - ErrPaymentNotFound: If no transaction matches
	// - ErrDatabaseConnection: If database connection fails
	GetByReference(ctx context.Context, referenceNumber string) (*entity.PaymentTransaction, error)

	// GetByReferenceAndType retrieves the transaction matching both the
	// reference number and the transaction type. Used by refund
	// reconciliation to locate the {id}_refund row.
	//
	// Possible errors:
	// - ErrPaymentNotFound: If no transaction matches
	// - ErrDatabaseConnection: If database connection fails
	GetByReferenceAndType(ctx context.Context, referenceNumber string, txType entity.TransactionType) (*entity.PaymentTransaction, error)

	// ListByReference retrieves every transaction sharing the reference
	// number, used for the booking cascade after a bulk status update
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByReference(ctx context.Context, referenceNumber string) ([]*entity.PaymentTransaction, error)
}
