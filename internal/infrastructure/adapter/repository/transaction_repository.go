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

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a payment transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.PaymentTransaction) model.PaymentTransaction {
	return model.PaymentTransaction{
		ID:              transaction.ID,
		BookingID:       transaction.BookingID,
		ReferenceNumber: transaction.ReferenceNumber,
		Amount:          transaction.Amount,
		Currency:        transaction.Currency,
		Status:          string(transaction.Status),
		PaidAmount:      transaction.PaidAmount,
		PaidCurrency:    transaction.PaidCurrency,
		RawStatus:       transaction.RawStatus,
		Type:            string(transaction.Type),
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}

// modelToEntity converts a payment transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.PaymentTransaction) *entity.PaymentTransaction {
	return &entity.PaymentTransaction{
		ID:              m.ID,
		BookingID:       m.BookingID,
		ReferenceNumber: m.ReferenceNumber,
		Amount:          m.Amount,
		Currency:        m.Currency,
		Status:          entity.TransactionStatus(m.Status),
		PaidAmount:      m.PaidAmount,
		PaidCurrency:    m.PaidCurrency,
		RawStatus:       m.RawStatus,
		Type:            entity.TransactionType(m.Type),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// Create saves a new payment transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.PaymentTransaction) error {
	r.logger.Debug("Creating payment transaction", map[string]any{
		"reference_number": transaction.ReferenceNumber,
		"booking_id":       transaction.BookingID,
		"type":             transaction.Type,
	})

	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsConstraintError(result.Error) {
			r.logger.Warn("Constraint violation creating transaction", map[string]any{
				"reference_number": transaction.ReferenceNumber,
				"error":            result.Error.Error(),
			})
			return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, result.Error.Error())
		}

		r.logger.Error("Failed to create payment transaction", map[string]any{
			"reference_number": transaction.ReferenceNumber,
			"booking_id":       transaction.BookingID,
			"error":            result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = transactionModel.ID

	r.logger.Info("Payment transaction created", map[string]any{
		"id":               transaction.ID,
		"reference_number": transaction.ReferenceNumber,
		"booking_id":       transaction.BookingID,
	})
	return nil
}

// UpdateByReference applies a sparse update to every transaction matching the
// reference number. Zero matching rows is reported, not treated as an error.
func (r *TransactionRepository) UpdateByReference(ctx context.Context, referenceNumber string, update entity.TransactionUpdate) (int64, error) {
	if update.IsEmpty() {
		return 0, nil
	}

	fields := map[string]interface{}{}
	if update.Status != nil {
		fields["status"] = string(*update.Status)
	}
	if update.PaidAmount != nil {
		fields["paid_amount"] = *update.PaidAmount
	}
	if update.PaidCurrency != nil {
		fields["paid_currency"] = *update.PaidCurrency
	}
	if update.RawStatus != nil {
		fields["raw_status"] = *update.RawStatus
	}

	result := r.db.WithContext(ctx).Model(&model.PaymentTransaction{}).
		Where("reference_number = ?", referenceNumber).
		Updates(fields)

	if result.Error != nil {
		r.logger.Error("Failed to update transactions by reference", map[string]any{
			"reference_number": referenceNumber,
			"error":            result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Debug("Transactions updated by reference", map[string]any{
		"reference_number": referenceNumber,
		"rows_affected":    result.RowsAffected,
	})
	return result.RowsAffected, nil
}

// GetByReference retrieves the first transaction matching the reference number
func (r *TransactionRepository) GetByReference(ctx context.Context, referenceNumber string) (*entity.PaymentTransaction, error) {
	var transactionModel model.PaymentTransaction
	result := r.db.WithContext(ctx).
		Where("reference_number = ?", referenceNumber).
		First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Payment transaction not found", map[string]any{
				"reference_number": referenceNumber,
			})
			return nil, errs.ErrPaymentNotFound
		}
		r.logger.Error("Failed to get payment transaction", map[string]any{
			"reference_number": referenceNumber,
			"error":            result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&transactionModel), nil
}

// GetByReferenceAndType retrieves the transaction matching both the reference
// number and the transaction type
func (r *TransactionRepository) GetByReferenceAndType(ctx context.Context, referenceNumber string, txType entity.TransactionType) (*entity.PaymentTransaction, error) {
	var transactionModel model.PaymentTransaction
	result := r.db.WithContext(ctx).
		Where("reference_number = ? AND type = ?", referenceNumber, string(txType)).
		First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Payment transaction not found for reference and type", map[string]any{
				"reference_number": referenceNumber,
				"type":             txType,
			})
			return nil, errs.ErrPaymentNotFound
		}
		r.logger.Error("Failed to get payment transaction", map[string]any{
			"reference_number": referenceNumber,
			"type":             txType,
			"error":            result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&transactionModel), nil
}

// ListByReference retrieves every transaction sharing the reference number
func (r *TransactionRepository) ListByReference(ctx context.Context, referenceNumber string) ([]*entity.PaymentTransaction, error) {
	var transactionModels []model.PaymentTransaction
	result := r.db.WithContext(ctx).
		Where("reference_number = ?", referenceNumber).
		Order("id ASC").
		Find(&transactionModels)

	if result.Error != nil {
		r.logger.Error("Failed to list transactions by reference", map[string]any{
			"reference_number": referenceNumber,
			"error":            result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.PaymentTransaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}
	return transactions, nil
}
