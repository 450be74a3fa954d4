package payment

import (
	"encoding/json"
	"testing"

	"github.com/stripe/stripe-go/v76"
	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	coremocks "github.com/voyagehub/payment-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway() *StripeGateway {
	return &StripeGateway{
		webhookSecret: "whsec_test",
		logger:        coremocks.NewMockLogger(),
	}
}

func stripeEvent(id, eventType, raw string) *stripe.Event {
	return &stripe.Event{
		ID:   id,
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: json.RawMessage(raw)},
	}
}

func TestMapEvent(t *testing.T) {
	t.Run("Payment intent succeeded", func(t *testing.T) {
		raw := `{
			"id": "pi_3abc",
			"status": "succeeded",
			"amount": 10000,
			"currency": "usd",
			"metadata": {
				"vendorId": "55",
				"userId": "7",
				"bookingId": "42",
				"invoiceNumber": "INV-1001"
			}
		}`

		ev, err := newTestGateway().mapEvent(stripeEvent("evt_1", entity.EventPaymentSucceeded, raw))

		require.NoError(t, err)
		assert.Equal(t, "evt_1", ev.ID)
		assert.Equal(t, entity.EventPaymentSucceeded, ev.Type)
		assert.Equal(t, "pi_3abc", ev.ObjectID)
		assert.Equal(t, "succeeded", ev.Status)
		assert.Equal(t, int64(10000), ev.Amount)
		assert.Equal(t, "usd", ev.Currency)
		assert.Equal(t, uint64(55), ev.Metadata.VendorID)
		assert.Equal(t, uint64(7), ev.Metadata.UserID)
		assert.Equal(t, uint64(42), ev.Metadata.BookingID)
		assert.Equal(t, "INV-1001", ev.Metadata.InvoiceNumber)
		assert.True(t, ev.IsPaymentEvent())
	})

	t.Run("Refund event keys on the payment intent", func(t *testing.T) {
		raw := `{
			"id": "re_1xyz",
			"status": "succeeded",
			"amount": 5000,
			"currency": "usd",
			"payment_intent": "pi_3abc",
			"metadata": {"vendorId": "55"}
		}`

		ev, err := newTestGateway().mapEvent(stripeEvent("evt_2", entity.EventRefundUpdated, raw))

		require.NoError(t, err)
		assert.True(t, ev.IsRefundEvent())
		assert.Equal(t, "pi_3abc", ev.ObjectID)
		assert.Equal(t, entity.RefundStatusSuccess, ev.Status)
		assert.Equal(t, int64(5000), ev.AmountRefunded)
	})

	t.Run("Refund amount is the refunded amount, not the charge", func(t *testing.T) {
		// A partial refund of a larger charge carries only its own amount.
		// The mapping must not present it as the charge amount, or partial
		// refunds would look full downstream.
		raw := `{
			"id": "re_1xyz",
			"status": "succeeded",
			"amount": 5000,
			"payment_intent": "pi_3abc",
			"metadata": {"vendorId": "55"}
		}`

		ev, err := newTestGateway().mapEvent(stripeEvent("evt_3", entity.EventRefundCreated, raw))

		require.NoError(t, err)
		assert.Equal(t, int64(5000), ev.AmountRefunded)
		assert.Equal(t, int64(0), ev.Amount)
	})

	t.Run("Refund without payment intent keeps the object id", func(t *testing.T) {
		raw := `{"id": "re_1xyz", "status": "pending", "amount": 10000}`

		ev, err := newTestGateway().mapEvent(stripeEvent("evt_4", entity.EventRefundUpdated, raw))

		require.NoError(t, err)
		assert.Equal(t, "re_1xyz", ev.ObjectID)
		assert.Equal(t, "pending", ev.Status)
	})

	t.Run("Malformed object payload", func(t *testing.T) {
		ev, err := newTestGateway().mapEvent(stripeEvent("evt_5", entity.EventPaymentSucceeded, `{"amount": "not a number"}`))

		assert.Nil(t, ev)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Unparseable metadata values become zero", func(t *testing.T) {
		raw := `{
			"id": "pi_3abc",
			"status": "succeeded",
			"amount": 10000,
			"metadata": {"vendorId": "not-a-number", "bookingId": "-1"}
		}`

		ev, err := newTestGateway().mapEvent(stripeEvent("evt_6", entity.EventPaymentSucceeded, raw))

		require.NoError(t, err)
		assert.Equal(t, uint64(0), ev.Metadata.VendorID)
		assert.Equal(t, uint64(0), ev.Metadata.BookingID)
	})
}

func TestParseEventRejectsBadSignature(t *testing.T) {
	ev, err := newTestGateway().ParseEvent([]byte(`{}`), "t=1,v1=bogus")

	assert.Nil(t, ev)
	assert.ErrorIs(t, err, errs.ErrInvalidSignature)
}

func TestNormalizeRefundStatus(t *testing.T) {
	assert.Equal(t, entity.RefundStatusSuccess, normalizeRefundStatus("succeeded"))
	assert.Equal(t, "processing", normalizeRefundStatus("processing"))
	assert.Equal(t, "canceled", normalizeRefundStatus("canceled"))
}
