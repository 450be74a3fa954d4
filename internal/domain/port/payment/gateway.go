package payment

import (
	"github.com/voyagehub/payment-ledger/internal/domain/entity"
)

// Gateway abstracts the payment processor SDK. Signature verification and
// envelope parsing happen behind this interface; the ledger only ever sees a
// parsed WebhookEvent.
type Gateway interface {
	// ParseEvent verifies the webhook signature and parses the raw payload
	// into a domain event
	//
	// Possible errors:
	// - ErrInvalidSignature: If the signature header doesn't match the payload
	// - ErrInvalidRequest: If the payload can't be parsed
	ParseEvent(payload []byte, signature string) (*entity.WebhookEvent, error)
}
