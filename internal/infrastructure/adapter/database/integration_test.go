package database

import (
	"context"
	"os"
	"testing"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/repository"
	coremocks "github.com/voyagehub/payment-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupIntegration connects to the test database named by the TEST_DB_*
// environment variables. Skipped when no test database is configured.
func setupIntegration(t *testing.T) *TestDBManager {
	t.Helper()

	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set, skipping database integration tests")
	}

	tdb := NewTestDBManager(t, coremocks.NewMockLogger())
	tdb.Connect(t)
	tdb.SetupTestDB(t)
	t.Cleanup(func() { tdb.Close(t) })

	return tdb
}

func TestWalletRepositoryAtomicAdjustments(t *testing.T) {
	tdb := setupIntegration(t)
	ctx := context.Background()

	tdb.CreateTestWallet(t, 55, 10000)

	walletRepo := repository.NewWalletRepository(tdb.Manager.DB(), tdb.TimeProvider, tdb.Logger)

	require.NoError(t, walletRepo.Credit(ctx, 55, 2500))
	require.NoError(t, walletRepo.Debit(ctx, 55, 500))

	w, err := walletRepo.GetByUserID(ctx, 55)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), w.Balance())

	t.Run("Missing wallet", func(t *testing.T) {
		err := walletRepo.Credit(ctx, 999, 100)
		assert.ErrorIs(t, err, errs.ErrWalletNotFound)
	})
}

func TestWebhookEventRecordIsIdempotent(t *testing.T) {
	tdb := setupIntegration(t)
	ctx := context.Background()

	eventRepo := repository.NewWebhookEventRepository(tdb.Manager.DB(), tdb.TimeProvider, tdb.Logger)

	seen, err := eventRepo.Record(ctx, "evt_integration_1", "payment_intent.succeeded")
	require.NoError(t, err)
	assert.False(t, seen)

	seen, err = eventRepo.Record(ctx, "evt_integration_1", "payment_intent.succeeded")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestUnitOfWorkRollbackDiscardsWrites(t *testing.T) {
	tdb := setupIntegration(t)
	ctx := context.Background()

	tdb.CreateTestBooking(t, 42)

	uow := NewUnitOfWork(tdb.Manager.DB(), tdb.Logger, tdb.TimeProvider)

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	txn, err := entity.NewPaymentTransaction(42, "pi_rollback", 10000, "usd", entity.TypePayment, tdb.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, uow.GetTransactionRepository(txCtx).Create(txCtx, txn))

	require.NoError(t, uow.Rollback(txCtx))

	outsideRepo := repository.NewTransactionRepository(tdb.Manager.DB(), tdb.Logger)
	_, err = outsideRepo.GetByReference(ctx, "pi_rollback")
	assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
}

func TestUnitOfWorkCommitPersistsAcrossRepositories(t *testing.T) {
	tdb := setupIntegration(t)
	ctx := context.Background()

	tdb.CreateTestBooking(t, 42)
	tdb.CreateTestWallet(t, 55, 10000)

	uow := NewUnitOfWork(tdb.Manager.DB(), tdb.Logger, tdb.TimeProvider)

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	txn, err := entity.NewPaymentTransaction(42, "pi_commit", 10000, "usd", entity.TypePayment, tdb.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, uow.GetTransactionRepository(txCtx).Create(txCtx, txn))
	require.NoError(t, uow.GetWalletRepository(txCtx).Credit(txCtx, 55, 8500))

	require.NoError(t, uow.Commit(txCtx))

	got, err := repository.NewTransactionRepository(tdb.Manager.DB(), tdb.Logger).GetByReference(ctx, "pi_commit")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got.BookingID)

	w, err := repository.NewWalletRepository(tdb.Manager.DB(), tdb.TimeProvider, tdb.Logger).GetByUserID(ctx, 55)
	require.NoError(t, err)
	assert.Equal(t, int64(18500), w.Balance())
}
