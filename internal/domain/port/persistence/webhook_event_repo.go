package persistence

import (
	"context"
)

// WebhookEventRepository records processor event ids so replays of the same
// delivery are detected and ignored
type WebhookEventRepository interface {
	// Record inserts the event id if it has not been seen before. Returns
	// true when the id was already recorded (a replay), false when this is
	// the first delivery. Implementations must make the insert race-safe
	// (unique constraint on the event id).
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Record(ctx context.Context, eventID, eventType string) (alreadySeen bool, err error)
}
