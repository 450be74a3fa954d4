package handler

import (
	"errors"
	"io"
	"net/http"

	domainerr "github.com/voyagehub/payment-ledger/internal/domain/error"
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	paymentport "github.com/voyagehub/payment-ledger/internal/domain/port/payment"
	"github.com/voyagehub/payment-ledger/internal/domain/usecase/ledger"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// maxWebhookBodyBytes caps webhook payload size; Stripe events are small
const maxWebhookBodyBytes = 65536

// WebhookHandler handles processor webhook deliveries
type WebhookHandler struct {
	gateway       paymentport.Gateway
	ledgerService *ledger.Service
	logger        coreport.Logger
	retryConfig   database.RetryConfig
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(
	gateway paymentport.Gateway,
	ledgerService *ledger.Service,
	logger coreport.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		gateway:       gateway,
		ledgerService: ledgerService,
		logger:        logger,
		retryConfig:   database.DefaultRetryConfig(),
	}
}

// HandleStripeWebhook handles the POST /payment/stripe/webhook endpoint.
// The raw body is read before any parsing because signature verification
// runs over the exact bytes Stripe signed.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Warn("Failed to read webhook body", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Unable to read request body",
		})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidSignature),
			Message: "Missing Stripe-Signature header",
		})
		return
	}

	ev, err := h.gateway.ParseEvent(payload, signature)
	if err != nil {
		if errors.Is(err, domainerr.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Webhook signature verification failed",
			})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Malformed webhook payload",
		})
		return
	}

	// Transient database failures are retried here rather than bounced back
	// to Stripe, whose redelivery cadence is much slower
	var result *ledger.WebhookResult
	err = database.RetryOnTransientError(c.Request.Context(), h.retryConfig, func() error {
		var opErr error
		result, opErr = h.ledgerService.HandleWebhookEvent(c.Request.Context(), ev)
		return opErr
	}, h.logger)

	if err != nil {
		status := http.StatusInternalServerError
		if result != nil {
			status = result.StatusCode
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Webhook processing failed",
		})
		return
	}

	c.JSON(result.StatusCode, dto.WebhookAckResponse{
		Received: result.Received,
		Success:  result.Success,
		Message:  result.Message,
	})
}
