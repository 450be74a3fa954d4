package ledger

import (
	"context"
	"testing"

	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	persistencemocks "github.com/voyagehub/payment-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckAndRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("First delivery", func(t *testing.T) {
		uow := new(persistencemocks.MockUnitOfWork)
		eventRepo := new(persistencemocks.MockWebhookEventRepository)

		uow.On("GetWebhookEventRepository", mock.Anything).Return(eventRepo)
		eventRepo.On("Record", mock.Anything, "evt_1", "payment_intent.succeeded").Return(false, nil)

		dedup := NewEventDeduplicator(uow)

		seen, err := dedup.CheckAndRecord(ctx, "evt_1", "payment_intent.succeeded")

		require.NoError(t, err)
		assert.False(t, seen)
	})

	t.Run("Replayed delivery", func(t *testing.T) {
		uow := new(persistencemocks.MockUnitOfWork)
		eventRepo := new(persistencemocks.MockWebhookEventRepository)

		uow.On("GetWebhookEventRepository", mock.Anything).Return(eventRepo)
		eventRepo.On("Record", mock.Anything, "evt_1", "payment_intent.succeeded").Return(true, nil)

		dedup := NewEventDeduplicator(uow)

		seen, err := dedup.CheckAndRecord(ctx, "evt_1", "payment_intent.succeeded")

		require.NoError(t, err)
		assert.True(t, seen)
	})

	t.Run("Store failure", func(t *testing.T) {
		uow := new(persistencemocks.MockUnitOfWork)
		eventRepo := new(persistencemocks.MockWebhookEventRepository)

		uow.On("GetWebhookEventRepository", mock.Anything).Return(eventRepo)
		eventRepo.On("Record", mock.Anything, "evt_1", "payment_intent.succeeded").Return(false, errs.ErrDatabaseConnection)

		dedup := NewEventDeduplicator(uow)

		seen, err := dedup.CheckAndRecord(ctx, "evt_1", "payment_intent.succeeded")

		assert.False(t, seen)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
