package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"InvalidReference", ErrInvalidReference, 4002},
		{"InvalidBookingID", ErrInvalidBookingID, 4003},
		{"DuplicateEvent", ErrDuplicateEvent, 4004},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"InvalidSignature", ErrInvalidSignature, 4006},
		{"PaymentNotFound", ErrPaymentNotFound, 4040},
		{"RefundNotFound", ErrRefundNotFound, 4041},
		{"WalletNotFound", ErrWalletNotFound, 4042},
		{"BookingNotFound", ErrBookingNotFound, 4043},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidBookingID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestReconciliationError(t *testing.T) {
	baseErr := ErrPaymentNotFound
	reconciliationErr := &ReconciliationError{
		EventID:   "evt_1",
		EventType: "payment_intent.succeeded",
		Reference: "pi_3abc",
		Err:       baseErr,
	}

	expectedErrMsg := "reconciliation failed for event evt_1 (type: payment_intent.succeeded, reference: pi_3abc): payment not found"
	if reconciliationErr.Error() != expectedErrMsg {
		t.Errorf("ReconciliationError.Error() = %s, want %s", reconciliationErr.Error(), expectedErrMsg)
	}

	if !errors.Is(reconciliationErr, ErrPaymentNotFound) {
		t.Error("ReconciliationError should unwrap to its base error")
	}

	fields := reconciliationErr.LogFields()
	if fields["event_id"] != "evt_1" {
		t.Errorf("LogFields event_id = %v, want evt_1", fields["event_id"])
	}
	if fields["error_code"] != 4040 {
		t.Errorf("LogFields error_code = %v, want 4040", fields["error_code"])
	}
}

func TestWalletError(t *testing.T) {
	walletErr := &WalletError{
		VendorID: 55,
		Amount:   4250,
		Err:      ErrWalletNotFound,
	}

	expectedErrMsg := "wallet operation failed for vendor 55 (amount: 4250): vendor wallet not found"
	if walletErr.Error() != expectedErrMsg {
		t.Errorf("WalletError.Error() = %s, want %s", walletErr.Error(), expectedErrMsg)
	}

	if !errors.Is(walletErr, ErrWalletNotFound) {
		t.Error("WalletError should unwrap to its base error")
	}
}

func TestIsNotFoundError(t *testing.T) {
	notFound := []error{
		ErrNotFound,
		ErrPaymentNotFound,
		ErrRefundNotFound,
		ErrWalletNotFound,
		ErrBookingNotFound,
		fmt.Errorf("context: %w", ErrPaymentNotFound),
	}
	for _, err := range notFound {
		if !IsNotFoundError(err) {
			t.Errorf("IsNotFoundError(%v) = false, want true", err)
		}
	}

	if IsNotFoundError(ErrInvalidAmount) {
		t.Error("IsNotFoundError(ErrInvalidAmount) = true, want false")
	}
	if IsNotFoundError(nil) {
		t.Error("IsNotFoundError(nil) = true, want false")
	}
}
