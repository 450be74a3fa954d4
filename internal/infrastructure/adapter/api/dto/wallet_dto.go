package dto

// WalletResponse represents the API response for a vendor's wallet balance
type WalletResponse struct {
	UserID  uint64 `json:"userId"`
	Balance string `json:"balance"`
}
