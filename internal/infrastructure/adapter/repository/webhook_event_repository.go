package repository

import (
	"context"
	"fmt"

	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WebhookEventRepository implements the WebhookEventRepository port using GORM
type WebhookEventRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewWebhookEventRepository creates a new WebhookEventRepository instance
func NewWebhookEventRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WebhookEventRepository {
	return &WebhookEventRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Record inserts the event id if unseen. ON CONFLICT DO NOTHING keeps the
// insert race-safe and avoids aborting the surrounding transaction on a
// replay; zero rows affected means the id was already recorded.
func (r *WebhookEventRepository) Record(ctx context.Context, eventID, eventType string) (bool, error) {
	eventModel := model.WebhookEvent{
		EventID:   eventID,
		EventType: eventType,
		CreatedAt: r.timeProvider.Now(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "event_id"}}, DoNothing: true}).
		Create(&eventModel)

	if result.Error != nil {
		r.logger.Error("Failed to record webhook event", map[string]any{
			"event_id":   eventID,
			"event_type": eventType,
			"error":      result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	alreadySeen := result.RowsAffected == 0
	if alreadySeen {
		r.logger.Debug("Webhook event already recorded", map[string]any{
			"event_id": eventID,
		})
	}
	return alreadySeen, nil
}
