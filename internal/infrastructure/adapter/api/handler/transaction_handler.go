package handler

import (
	"net/http"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	domainerr "github.com/voyagehub/payment-ledger/internal/domain/error"
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	"github.com/voyagehub/payment-ledger/internal/domain/usecase/ledger"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles ledger transaction HTTP requests
type TransactionHandler struct {
	ledgerService *ledger.Service
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledgerService *ledger.Service, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// CreateTransaction handles the POST /transaction endpoint
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid create transaction request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	in := ledger.CreateTransactionInput{
		BookingID: req.BookingID,
		Type:      entity.TransactionType(req.Type),
	}

	if req.Amount != "" {
		amountMinor, err := entity.ParseMajorAmount(req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Invalid amount: " + req.Amount,
			})
			return
		}
		in.Amount = &amountMinor
	}
	if req.Currency != "" {
		in.Currency = &req.Currency
	}
	if req.ReferenceNumber != "" {
		in.ReferenceNumber = &req.ReferenceNumber
	}
	if req.Status != "" {
		status := entity.TransactionStatus(req.Status)
		in.Status = &status
	}

	txn, err := h.ledgerService.CreateTransaction(c.Request.Context(), in)
	if err != nil {
		c.JSON(statusCodeFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.TransactionResponse{
		ID:              txn.ID,
		BookingID:       txn.BookingID,
		ReferenceNumber: txn.ReferenceNumber,
		Amount:          entity.MinorToMajorString(txn.Amount),
		Currency:        txn.Currency,
		Status:          string(txn.Status),
		Type:            string(txn.Type),
	})
}

// UpdateTransaction handles the PATCH /transaction/:reference endpoint
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	reference := c.Param("reference")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid update transaction request format", map[string]any{
			"reference": reference,
			"error":     err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	var update entity.TransactionUpdate
	if req.Status != nil {
		status := entity.TransactionStatus(*req.Status)
		update.Status = &status
	}
	if req.PaidAmount != nil {
		paidMinor, err := entity.ParseMajorAmount(*req.PaidAmount)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Invalid paid amount: " + *req.PaidAmount,
			})
			return
		}
		update.PaidAmount = &paidMinor
	}
	update.PaidCurrency = req.PaidCurrency
	update.RawStatus = req.RawStatus

	result, err := h.ledgerService.UpdateTransaction(c.Request.Context(), reference, update)
	if err != nil {
		c.JSON(statusCodeFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.UpdateTransactionResponse{
		ReferenceNumber: reference,
		RowsAffected:    result.RowsAffected,
		BookingsUpdated: result.BookingsUpdated,
	})
}
