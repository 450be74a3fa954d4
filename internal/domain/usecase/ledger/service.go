package ledger

import (
	"context"
	"net/http"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	"github.com/voyagehub/payment-ledger/internal/domain/port/persistence"
)

// Config carries the tunable behavior of the ledger service
type Config struct {
	// CommissionRatePercent is the platform commission assumed retained on
	// the original charge, applied when computing partial-refund clawbacks
	// and vendor credits
	CommissionRatePercent int64

	// SyncBookingStatus propagates transaction status updates to the owning
	// booking's payment status mirror
	SyncBookingStatus bool

	// CreditVendorOnSuccess credits the vendor wallet (net of commission)
	// when a payment succeeds
	CreditVendorOnSuccess bool
}

// WebhookResult is the acknowledgment returned to the processor
type WebhookResult struct {
	Received   bool
	Success    bool
	Message    string
	StatusCode int
}

// Service ties the ledger components together: transaction creation, sparse
// status updates, refund reconciliation and webhook dispatch.
type Service struct {
	uow        persistence.UnitOfWork
	creator    *TransactionCreator
	updater    *TransactionUpdater
	reconciler *RefundReconciler
	dedup      *EventDeduplicator
	validator  *LedgerValidator
	logger     coreport.Logger
	cfg        Config
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	return &Service{
		uow:        uow,
		creator:    NewTransactionCreator(uow, timeProvider, logger),
		updater:    NewTransactionUpdater(uow, logger, cfg.SyncBookingStatus),
		reconciler: NewRefundReconciler(uow, timeProvider, logger, cfg.CommissionRatePercent),
		dedup:      NewEventDeduplicator(uow),
		validator:  NewLedgerValidator(),
		logger:     logger,
		cfg:        cfg,
	}
}

// CreateTransaction records a new payment or refund transaction. Runs inside
// a unit of work so a refund transaction and its refund record commit
// atomically.
func (s *Service) CreateTransaction(ctx context.Context, in CreateTransactionInput) (*entity.PaymentTransaction, error) {
	if err := s.validator.ValidateCreate(in); err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	txn, err := s.creator.Create(txCtx, in)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	return txn, nil
}

// UpdateTransaction applies a sparse status update to all transactions
// matching the reference. Runs inside a unit of work so the booking cascade
// commits atomically with the transaction rows.
func (s *Service) UpdateTransaction(ctx context.Context, referenceNumber string, update entity.TransactionUpdate) (*UpdateResult, error) {
	if err := s.validator.ValidateUpdate(referenceNumber, update); err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.updater.Apply(txCtx, referenceNumber, update)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	return result, nil
}

// HandleWebhookEvent reconciles one verified processor event into ledger
// state. The idempotency record, the transaction/refund updates and the
// wallet adjustment all commit in a single database transaction.
//
// Missing-record and validation-failure conditions acknowledge with
// success=false so the processor stops retrying a delivery that can never
// apply; transient failures roll back and surface as errors so the delivery
// is retried.
func (s *Service) HandleWebhookEvent(ctx context.Context, ev *entity.WebhookEvent) (*WebhookResult, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return s.internalResult(err)
	}

	seen, err := s.dedup.CheckAndRecord(txCtx, ev.ID, ev.Type)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return s.internalResult(err)
	}
	if seen {
		_ = s.uow.Commit(txCtx)
		s.logger.Info("Duplicate webhook event ignored", map[string]any{
			"event_id":   ev.ID,
			"event_type": ev.Type,
		})
		return &WebhookResult{
			Received:   true,
			Success:    true,
			Message:    "duplicate event ignored",
			StatusCode: http.StatusOK,
		}, nil
	}

	var dispatchErr error

	switch {
	case ev.IsPaymentEvent():
		dispatchErr = s.applyPaymentEvent(txCtx, ev)

	case ev.IsRefundEvent():
		in := RefundInput{
			PaymentID:      ev.ObjectID,
			Status:         ev.Status,
			Metadata:       ev.Metadata,
			AmountRefunded: ev.AmountRefunded,
		}
		if err := s.validator.ValidateRefund(in); err != nil {
			// A refund event that fails validation can never apply, no
			// matter how often the processor redelivers it. Acknowledge so
			// the retries stop.
			_ = s.uow.Rollback(txCtx)
			s.logger.Warn("Refund event failed validation, acknowledging", map[string]any{
				"event_id":   ev.ID,
				"event_type": ev.Type,
				"reference":  ev.ObjectID,
				"error":      err.Error(),
			})
			return &WebhookResult{
				Received:   true,
				Success:    false,
				Message:    err.Error(),
				StatusCode: http.StatusOK,
			}, nil
		}
		_, dispatchErr = s.reconciler.Reconcile(txCtx, in)

	default:
		s.logger.Info("Unhandled webhook event type, acknowledging", map[string]any{
			"event_id":   ev.ID,
			"event_type": ev.Type,
		})
	}

	if dispatchErr != nil {
		_ = s.uow.Rollback(txCtx)

		if errs.IsNotFoundError(dispatchErr) {
			s.logger.Warn("Webhook event references unknown records", map[string]any{
				"event_id":   ev.ID,
				"event_type": ev.Type,
				"error":      dispatchErr.Error(),
			})
			return &WebhookResult{
				Received:   true,
				Success:    false,
				Message:    dispatchErr.Error(),
				StatusCode: http.StatusOK,
			}, nil
		}

		s.logger.Error("Webhook event processing failed", map[string]any{
			"event_id":   ev.ID,
			"event_type": ev.Type,
			"error":      dispatchErr.Error(),
		})
		result, _ := s.internalResult(dispatchErr)
		return result, errs.NewReconciliationError(ev.ID, ev.Type, ev.ObjectID, dispatchErr)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return s.internalResult(err)
	}

	return &WebhookResult{
		Received:   true,
		Success:    true,
		StatusCode: http.StatusOK,
	}, nil
}

// applyPaymentEvent maps a payment intent event onto a sparse transaction
// update, and on success credits the vendor wallet net of commission
func (s *Service) applyPaymentEvent(ctx context.Context, ev *entity.WebhookEvent) error {
	status := statusForPaymentEvent(ev.Type)

	update := entity.TransactionUpdate{
		Status:    &status,
		RawStatus: &ev.Status,
	}
	if ev.Type == entity.EventPaymentSucceeded {
		update.PaidAmount = &ev.Amount
		update.PaidCurrency = &ev.Currency
	}

	result, err := s.updater.Apply(ctx, ev.ObjectID, update)
	if err != nil {
		return err
	}

	if ev.Type != entity.EventPaymentSucceeded || result.RowsAffected == 0 {
		return nil
	}

	if !s.cfg.CreditVendorOnSuccess || ev.Metadata.VendorID == 0 {
		return nil
	}

	commission := entity.CommissionMinor(ev.Amount, s.cfg.CommissionRatePercent)
	credit := ev.Amount - commission

	walletRepo := s.uow.GetWalletRepository(ctx)
	if err := walletRepo.Credit(ctx, ev.Metadata.VendorID, credit); err != nil {
		return errs.NewWalletError(ev.Metadata.VendorID, credit, err)
	}

	s.logger.Info("Vendor wallet credited for payment", map[string]any{
		"vendor_id":  ev.Metadata.VendorID,
		"reference":  ev.ObjectID,
		"credit":     entity.MinorToMajorString(credit),
		"commission": entity.MinorToMajorString(commission),
	})

	return nil
}

// internalResult builds the non-acknowledging failure result
func (s *Service) internalResult(err error) (*WebhookResult, error) {
	return &WebhookResult{
		Received:   false,
		Success:    false,
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
	}, err
}

// statusForPaymentEvent maps a payment intent event type to the ledger status
func statusForPaymentEvent(eventType string) entity.TransactionStatus {
	switch eventType {
	case entity.EventPaymentSucceeded:
		return entity.StatusSucceeded
	case entity.EventPaymentProcessing:
		return entity.StatusProcessing
	default:
		return entity.StatusFailed
	}
}
