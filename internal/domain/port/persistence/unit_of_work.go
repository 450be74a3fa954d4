package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating reconciliation writes
// across multiple repositories inside a single database transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetRefundRepository returns a refund repository bound to the current transaction
	GetRefundRepository(ctx context.Context) RefundRepository

	// GetWalletRepository returns a wallet repository bound to the current transaction
	GetWalletRepository(ctx context.Context) WalletRepository

	// GetBookingRepository returns a booking repository bound to the current transaction
	GetBookingRepository(ctx context.Context) BookingRepository

	// GetWebhookEventRepository returns a webhook event repository bound to the current transaction
	GetWebhookEventRepository(ctx context.Context) WebhookEventRepository
}
