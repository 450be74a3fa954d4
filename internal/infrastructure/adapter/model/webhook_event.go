package model

import (
	"time"
)

// WebhookEvent represents the idempotency ledger of processed webhook
// deliveries. The unique index on EventID is what makes replays detectable.
type WebhookEvent struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	EventID   string    `gorm:"uniqueIndex;not null;size:255"`
	EventType string    `gorm:"not null;size:100"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for WebhookEvent
func (WebhookEvent) TableName() string {
	return "webhook_events"
}
