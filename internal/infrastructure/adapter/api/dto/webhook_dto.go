package dto

// WebhookAckResponse acknowledges a processor webhook delivery. A delivery
// referencing records the ledger doesn't know is acknowledged with
// success=false so the processor stops retrying it.
type WebhookAckResponse struct {
	Received bool   `json:"received"`
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
}
