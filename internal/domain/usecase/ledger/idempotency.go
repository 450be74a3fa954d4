package ledger

import (
	"context"
	"fmt"

	"github.com/voyagehub/payment-ledger/internal/domain/port/persistence"
)

// EventDeduplicator guards webhook processing against double delivery.
// Processors re-send events until acknowledged; recording each event id
// before acting makes the second delivery a detectable replay.
type EventDeduplicator struct {
	uow persistence.UnitOfWork
}

// NewEventDeduplicator creates a new EventDeduplicator
func NewEventDeduplicator(uow persistence.UnitOfWork) *EventDeduplicator {
	return &EventDeduplicator{
		uow: uow,
	}
}

// CheckAndRecord records the event id inside the current transaction.
// Returns true when the id was already recorded, meaning the delivery is a
// replay and must not be re-applied. The record commits together with the
// reconciliation it guards, so a rolled-back attempt can be retried.
func (d *EventDeduplicator) CheckAndRecord(ctx context.Context, eventID, eventType string) (bool, error) {
	eventRepo := d.uow.GetWebhookEventRepository(ctx)

	seen, err := eventRepo.Record(ctx, eventID, eventType)
	if err != nil {
		return false, fmt.Errorf("failed to record webhook event: %w", err)
	}

	return seen, nil
}
