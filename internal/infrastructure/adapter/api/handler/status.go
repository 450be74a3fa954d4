package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/voyagehub/payment-ledger/internal/domain/error"
)

// statusCodeFor maps a domain error to an HTTP status code
func statusCodeFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidReference),
		errors.Is(err, domainerr.ErrInvalidBookingID),
		errors.Is(err, domainerr.ErrInvalidVendorID),
		errors.Is(err, domainerr.ErrInvalidTransactionType),
		errors.Is(err, domainerr.ErrInvalidStatus),
		errors.Is(err, domainerr.ErrInvalidSignature),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrConstraintViolation),
		errors.Is(err, domainerr.ErrDuplicateEvent),
		errors.Is(err, domainerr.ErrRefundFinalized):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
