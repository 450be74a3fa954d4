package ledger

import (
	"context"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	"github.com/voyagehub/payment-ledger/internal/domain/port/persistence"
)

// RefundInput carries the processor-reported refund state to reconcile.
// Refund events carry only the refunded amount; the original charge amount
// is resolved from the originating payment transaction in the ledger.
type RefundInput struct {
	PaymentID      string // Processor id of the original payment
	Status         string // processing, success, or anything else (failure)
	Metadata       entity.EventMetadata
	AmountRefunded int64 // Minor units refunded, as reported by the processor
}

// RefundResult reports the outcome of a refund reconciliation
type RefundResult struct {
	Replayed          bool   // True when the refund record was already terminal
	RefundAmountMinor int64  // Amount clawed back from the vendor wallet (success only)
	Timestamp         string // Which lifecycle timestamp was set
}

// RefundReconciler drives the refund lifecycle: it resolves the processor's
// refund status into exactly one lifecycle timestamp on the refund record,
// and on success claws the refunded amount back from the vendor's wallet.
type RefundReconciler struct {
	uow            persistence.UnitOfWork
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	commissionRate int64 // Percent retained by the platform on the original charge
}

// NewRefundReconciler creates a new RefundReconciler
func NewRefundReconciler(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	commissionRatePercent int64,
) *RefundReconciler {
	return &RefundReconciler{
		uow:            uow,
		timeProvider:   timeProvider,
		logger:         logger,
		commissionRate: commissionRatePercent,
	}
}

// RefundAmount computes the minor-unit amount returned to the vendor ledger.
// A full refund (amount == amountRefunded) carries no commission. A partial
// refund assumes the platform already retained its commission on the
// original charge, so the clawback is reduced by that commission.
func (r *RefundReconciler) RefundAmount(amount, amountRefunded int64) int64 {
	if amount == amountRefunded {
		return amountRefunded
	}
	commission := entity.CommissionMinor(amountRefunded, r.commissionRate)
	return amountRefunded - commission
}

// Reconcile applies a processor-reported refund status. The caller owns the
// surrounding unit-of-work transaction; ctx must be a transactional context.
//
// Status routing:
//   - processing            -> processing_at
//   - success               -> completed_at + wallet debit
//   - anything else         -> failed_at
//
// A refund record that already carries a terminal timestamp is never
// re-written: replays return a Replayed result and leave the wallet alone.
func (r *RefundReconciler) Reconcile(ctx context.Context, in RefundInput) (*RefundResult, error) {
	transactionRepo := r.uow.GetTransactionRepository(ctx)
	refundRepo := r.uow.GetRefundRepository(ctx)

	reference := entity.RefundReference(in.PaymentID)

	txn, err := transactionRepo.GetByReferenceAndType(ctx, reference, entity.TypeRefund)
	if err != nil {
		return nil, err
	}

	refund, err := refundRepo.GetByTransactionID(ctx, txn.ID)
	if err != nil {
		return nil, err
	}

	if refund.IsTerminal() {
		r.logger.Warn("Refund already finalized, ignoring replayed event", map[string]any{
			"payment_id": in.PaymentID,
			"reference":  reference,
			"status":     in.Status,
		})
		return &RefundResult{Replayed: true}, nil
	}

	result := &RefundResult{}

	switch in.Status {
	case entity.RefundStatusProcessing:
		if err := refund.MarkProcessing(r.timeProvider); err != nil {
			return nil, err
		}
		result.Timestamp = "processing_at"

	case entity.RefundStatusSuccess:
		// The full-or-partial decision compares against the original charge,
		// which lives on the payment transaction, not the event
		payment, err := transactionRepo.GetByReferenceAndType(ctx, in.PaymentID, entity.TypePayment)
		if err != nil {
			return nil, err
		}

		if err := refund.MarkCompleted(r.timeProvider); err != nil {
			return nil, err
		}
		result.Timestamp = "completed_at"

		refundAmount := r.RefundAmount(payment.Amount, in.AmountRefunded)
		result.RefundAmountMinor = refundAmount

		walletRepo := r.uow.GetWalletRepository(ctx)
		if err := walletRepo.Debit(ctx, in.Metadata.VendorID, refundAmount); err != nil {
			return nil, errs.NewWalletError(in.Metadata.VendorID, refundAmount, err)
		}

		r.logger.Info("Vendor wallet debited for refund", map[string]any{
			"vendor_id":     in.Metadata.VendorID,
			"payment_id":    in.PaymentID,
			"refund_amount": entity.MinorToMajorString(refundAmount),
		})

	default:
		if err := refund.MarkFailed(r.timeProvider); err != nil {
			return nil, err
		}
		result.Timestamp = "failed_at"
	}

	if err := refundRepo.Update(ctx, refund); err != nil {
		return nil, err
	}

	r.logger.Info("Refund reconciled", map[string]any{
		"payment_id": in.PaymentID,
		"reference":  reference,
		"status":     in.Status,
		"timestamp":  result.Timestamp,
	})

	return result, nil
}
