package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	"github.com/voyagehub/payment-ledger/internal/domain/port/persistence"
)

// CreateTransactionInput carries the fields supplied for a new transaction.
// Absent optional fields are omitted at the store, not nulled.
type CreateTransactionInput struct {
	BookingID       uint64
	Amount          *int64
	Currency        *string
	ReferenceNumber *string
	Status          *entity.TransactionStatus
	Type            entity.TransactionType
}

// TransactionCreator persists new payment transactions. A refund-type
// transaction gets its one-to-one refund lifecycle record in the same
// transaction, so a later refund webhook always finds it.
type TransactionCreator struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTransactionCreator creates a new TransactionCreator
func NewTransactionCreator(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TransactionCreator {
	return &TransactionCreator{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create builds and persists a transaction from the supplied fields.
// Defaults: status pending, type payment, generated reference number when
// none was supplied. The caller owns the surrounding unit-of-work
// transaction; ctx must be a transactional context. Returns the created
// record.
func (c *TransactionCreator) Create(ctx context.Context, in CreateTransactionInput) (*entity.PaymentTransaction, error) {
	txType := in.Type
	if txType == "" {
		txType = entity.TypePayment
	}

	reference := ""
	if in.ReferenceNumber != nil {
		reference = *in.ReferenceNumber
	}
	if reference == "" {
		reference = uuid.NewString()
	}

	amount := int64(0)
	if in.Amount != nil {
		amount = *in.Amount
	}

	currency := ""
	if in.Currency != nil {
		currency = *in.Currency
	}

	txn, err := entity.NewPaymentTransaction(
		in.BookingID,
		reference,
		amount,
		currency,
		txType,
		c.timeProvider,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}

	if in.Status != nil {
		txn.Status = *in.Status
	}

	if err := c.uow.GetTransactionRepository(ctx).Create(ctx, txn); err != nil {
		return nil, err
	}

	if txn.IsRefund() {
		refund, err := entity.NewRefundTransaction(txn.ID, c.timeProvider)
		if err != nil {
			return nil, err
		}
		if err := c.uow.GetRefundRepository(ctx).Create(ctx, refund); err != nil {
			return nil, err
		}
		c.logger.Info("Refund record created", map[string]any{
			"transaction_id": txn.ID,
			"reference":      txn.ReferenceNumber,
		})
	}

	c.logger.Info("Transaction created", map[string]any{
		"booking_id": txn.BookingID,
		"reference":  txn.ReferenceNumber,
		"type":       txn.Type,
		"status":     txn.Status,
	})

	return txn, nil
}
