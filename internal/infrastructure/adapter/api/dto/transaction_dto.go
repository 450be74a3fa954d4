package dto

// CreateTransactionRequest represents the API request for recording a new
// transaction. Amounts are submitted in major units with up to two decimal
// places, e.g. "42.50".
type CreateTransactionRequest struct {
	BookingID       uint64 `json:"bookingId" binding:"required"`
	Amount          string `json:"amount,omitempty"`
	Currency        string `json:"currency,omitempty"`
	ReferenceNumber string `json:"referenceNumber,omitempty"`
	Status          string `json:"status,omitempty" binding:"omitempty,oneof=pending processing succeeded failed"`
	Type            string `json:"type,omitempty" binding:"omitempty,oneof=payment refund"`
}

// TransactionResponse represents the API response for a recorded transaction
type TransactionResponse struct {
	ID              uint64 `json:"id"`
	BookingID       uint64 `json:"bookingId"`
	ReferenceNumber string `json:"referenceNumber"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency,omitempty"`
	Status          string `json:"status"`
	Type            string `json:"type"`
}

// UpdateTransactionRequest represents a sparse status update. Only fields
// present in the request are written.
type UpdateTransactionRequest struct {
	Status       *string `json:"status,omitempty" binding:"omitempty,oneof=pending processing succeeded failed"`
	PaidAmount   *string `json:"paidAmount,omitempty"`
	PaidCurrency *string `json:"paidCurrency,omitempty"`
	RawStatus    *string `json:"rawStatus,omitempty"`
}

// UpdateTransactionResponse reports the outcome of a sparse status update
type UpdateTransactionResponse struct {
	ReferenceNumber string `json:"referenceNumber"`
	RowsAffected    int64  `json:"rowsAffected"`
	BookingsUpdated int    `json:"bookingsUpdated"`
}
