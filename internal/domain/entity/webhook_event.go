package entity

// Well-known processor event types the dispatcher acts on. Anything else is
// logged and acknowledged without effect.
const (
	EventPaymentSucceeded  = "payment_intent.succeeded"
	EventPaymentProcessing = "payment_intent.processing"
	EventPaymentFailed     = "payment_intent.payment_failed"
	EventRefundUpdated     = "charge.refund.updated"
	EventRefundCreated     = "refund.created"
)

// Refund statuses as reported by the processor on refund events
const (
	RefundStatusProcessing = "processing"
	RefundStatusSuccess    = "success"
)

// EventMetadata carries the marketplace identifiers attached to the payment
// at charge time and echoed back by the processor on every event.
type EventMetadata struct {
	VendorID      uint64
	UserID        uint64
	InvoiceNumber string
	BookingID     uint64
}

// WebhookEvent is a processor webhook event after signature verification and
// envelope parsing. The payment gateway adapter produces these; the ledger
// consumes them.
type WebhookEvent struct {
	ID             string        // Processor-issued event id (idempotency key)
	Type           string        // Event type tag, e.g. payment_intent.succeeded
	ObjectID       string        // Identifier of the payment intent or refund the event refers to
	Status         string        // Processor-reported status of the object
	Amount         int64         // Charge amount in minor units (payment events only)
	AmountRefunded int64         // Amount refunded by this refund, minor units (refund events only)
	Currency       string        // Currency of the amounts
	Metadata       EventMetadata // Marketplace identifiers
}

// IsRefundEvent reports whether the event belongs to the refund family
func (e *WebhookEvent) IsRefundEvent() bool {
	return e.Type == EventRefundUpdated || e.Type == EventRefundCreated
}

// IsPaymentEvent reports whether the event belongs to the payment intent family
func (e *WebhookEvent) IsPaymentEvent() bool {
	return e.Type == EventPaymentSucceeded ||
		e.Type == EventPaymentProcessing ||
		e.Type == EventPaymentFailed
}
