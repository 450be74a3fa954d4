package migration

import (
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Composite index for the booking cascade: all transactions of a booking
	// filtered by status
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_payment_transactions_booking_status
		ON payment_transactions (booking_id, status)
	`).Error; err != nil {
		m.logger.Error("Failed to create booking_status composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Partial index for refunds still in flight; terminal refunds are the
	// common case and never queried by this path
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_refund_transactions_pending
		ON refund_transactions (transaction_id)
		WHERE completed_at IS NULL AND failed_at IS NULL
	`).Error; err != nil {
		m.logger.Error("Failed to create pending refunds partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Event lookups during replay audits are by type over a time window
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_webhook_events_type_created
		ON webhook_events (event_type, created_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create webhook event type index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	return nil
}
