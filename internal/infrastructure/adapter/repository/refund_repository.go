package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// RefundRepository implements the RefundRepository port using GORM
type RefundRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRefundRepository creates a new RefundRepository instance
func NewRefundRepository(db *gorm.DB, logger coreport.Logger) *RefundRepository {
	return &RefundRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *RefundRepository) entityToModel(refund *entity.RefundTransaction) model.RefundTransaction {
	return model.RefundTransaction{
		ID:            refund.ID,
		TransactionID: refund.TransactionID,
		ProcessingAt:  refund.ProcessingAt,
		CompletedAt:   refund.CompletedAt,
		FailedAt:      refund.FailedAt,
		CreatedAt:     refund.CreatedAt,
		UpdatedAt:     refund.UpdatedAt,
	}
}

func (r *RefundRepository) modelToEntity(m *model.RefundTransaction) *entity.RefundTransaction {
	return &entity.RefundTransaction{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		ProcessingAt:  m.ProcessingAt,
		CompletedAt:   m.CompletedAt,
		FailedAt:      m.FailedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// Create saves a new refund record
func (r *RefundRepository) Create(ctx context.Context, refund *entity.RefundTransaction) error {
	refundModel := r.entityToModel(refund)

	result := r.db.WithContext(ctx).Create(&refundModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Refund record already exists for transaction", map[string]any{
				"transaction_id": refund.TransactionID,
			})
			return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, result.Error.Error())
		}
		r.logger.Error("Failed to create refund record", map[string]any{
			"transaction_id": refund.TransactionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	refund.ID = refundModel.ID
	return nil
}

// GetByTransactionID retrieves the refund record owned by the given transaction
func (r *RefundRepository) GetByTransactionID(ctx context.Context, transactionID uint64) (*entity.RefundTransaction, error) {
	var refundModel model.RefundTransaction
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&refundModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Refund record not found", map[string]any{
				"transaction_id": transactionID,
			})
			return nil, errs.ErrRefundNotFound
		}
		r.logger.Error("Failed to get refund record", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&refundModel), nil
}

// Update persists the lifecycle timestamps of an existing refund record
func (r *RefundRepository) Update(ctx context.Context, refund *entity.RefundTransaction) error {
	result := r.db.WithContext(ctx).Model(&model.RefundTransaction{}).
		Where("id = ?", refund.ID).
		Updates(map[string]interface{}{
			"processing_at": refund.ProcessingAt,
			"completed_at":  refund.CompletedAt,
			"failed_at":     refund.FailedAt,
			"updated_at":    refund.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update refund record", map[string]any{
			"id":             refund.ID,
			"transaction_id": refund.TransactionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Refund record not found during update", map[string]any{
			"id": refund.ID,
		})
		return errs.ErrRefundNotFound
	}

	return nil
}
