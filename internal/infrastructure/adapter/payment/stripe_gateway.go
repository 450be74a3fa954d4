package payment

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	paymentport "github.com/voyagehub/payment-ledger/internal/domain/port/payment"
)

// eventObject is the slice of the Stripe event payload the ledger cares
// about. Payment intent events carry id/status/amount; refund events carry
// the refund's own amount plus the owning payment intent.
type eventObject struct {
	ID            string            `json:"id"`
	Status        string            `json:"status"`
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	PaymentIntent string            `json:"payment_intent"`
	Metadata      map[string]string `json:"metadata"`
}

// StripeGateway implements the payment Gateway port against Stripe webhooks
type StripeGateway struct {
	webhookSecret string
	logger        coreport.Logger
}

// NewStripeGateway creates a new Stripe gateway adapter
func NewStripeGateway(webhookSecret string, logger coreport.Logger) paymentport.Gateway {
	return &StripeGateway{
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// ParseEvent verifies the webhook signature and maps the Stripe event into a
// domain webhook event. An invalid signature is rejected before any payload
// field is trusted.
func (g *StripeGateway) ParseEvent(payload []byte, signature string) (*entity.WebhookEvent, error) {
	stripeEvent, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		g.logger.Warn("Webhook signature verification failed", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSignature, err.Error())
	}

	return g.mapEvent(&stripeEvent)
}

func (g *StripeGateway) mapEvent(stripeEvent *stripe.Event) (*entity.WebhookEvent, error) {
	var object eventObject
	if err := json.Unmarshal(stripeEvent.Data.Raw, &object); err != nil {
		g.logger.Error("Failed to decode webhook event object", map[string]any{
			"event_id":   stripeEvent.ID,
			"event_type": stripeEvent.Type,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: malformed event object", errs.ErrInvalidRequest)
	}

	ev := &entity.WebhookEvent{
		ID:       stripeEvent.ID,
		Type:     string(stripeEvent.Type),
		ObjectID: object.ID,
		Status:   object.Status,
		Amount:   object.Amount,
		Currency: object.Currency,
		Metadata: parseMetadata(object.Metadata),
	}

	if ev.IsRefundEvent() {
		// Refund objects point back at the payment intent the ledger keyed
		// the transaction on
		if object.PaymentIntent != "" {
			ev.ObjectID = object.PaymentIntent
		}
		ev.Status = normalizeRefundStatus(object.Status)
		// A refund object's amount is the amount refunded by this refund.
		// The original charge amount is not on the event; the ledger
		// resolves it from the originating payment transaction.
		ev.AmountRefunded = object.Amount
		ev.Amount = 0
	}

	return ev, nil
}

// normalizeRefundStatus maps Stripe's refund status vocabulary onto the
// ledger's
func normalizeRefundStatus(status string) string {
	if status == "succeeded" {
		return entity.RefundStatusSuccess
	}
	return status
}

// parseMetadata extracts the marketplace identifiers attached at charge time
func parseMetadata(raw map[string]string) entity.EventMetadata {
	md := entity.EventMetadata{
		InvoiceNumber: raw["invoiceNumber"],
	}
	md.VendorID = parseUint(raw["vendorId"])
	md.UserID = parseUint(raw["userId"])
	md.BookingID = parseUint(raw["bookingId"])
	return md
}

func parseUint(s string) uint64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
