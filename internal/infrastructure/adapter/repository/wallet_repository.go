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

// WalletRepository implements the WalletRepository port using GORM.
// Credit and Debit are single UPDATE statements with a relative expression so
// concurrent adjustments serialize at the row without read-modify-write.
type WalletRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a wallet model to an entity
func (r *WalletRepository) modelToEntity(m *model.VendorWallet) (*entity.VendorWallet, error) {
	wallet, err := entity.NewVendorWallet(m.UserID, m.Balance, r.timeProvider)
	if err != nil {
		return nil, err
	}
	wallet.ID = m.ID
	wallet.CreatedAt = m.CreatedAt
	wallet.UpdatedAt = m.UpdatedAt
	return wallet, nil
}

// GetByUserID retrieves the wallet owned by the given vendor
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.VendorWallet, error) {
	var walletModel model.VendorWallet
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&walletModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Vendor wallet not found", map[string]any{
				"user_id": userID,
			})
			return nil, errs.ErrWalletNotFound
		}
		r.logger.Error("Failed to get vendor wallet", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&walletModel)
}

// Create creates a wallet for a vendor
func (r *WalletRepository) Create(ctx context.Context, wallet *entity.VendorWallet) error {
	walletModel := model.VendorWallet{
		UserID:    wallet.UserID,
		Balance:   wallet.Balance(),
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&walletModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Vendor wallet already exists", map[string]any{
				"user_id": wallet.UserID,
			})
			return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, result.Error.Error())
		}
		r.logger.Error("Failed to create vendor wallet", map[string]any{
			"user_id": wallet.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	wallet.ID = walletModel.ID
	return nil
}

// Credit atomically adds amountMinor to the vendor's balance
func (r *WalletRepository) Credit(ctx context.Context, userID uint64, amountMinor int64) error {
	return r.adjustBalance(ctx, userID, amountMinor)
}

// Debit atomically subtracts amountMinor from the vendor's balance
func (r *WalletRepository) Debit(ctx context.Context, userID uint64, amountMinor int64) error {
	return r.adjustBalance(ctx, userID, -amountMinor)
}

func (r *WalletRepository) adjustBalance(ctx context.Context, userID uint64, deltaMinor int64) error {
	result := r.db.WithContext(ctx).Model(&model.VendorWallet{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", deltaMinor),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		r.logger.Error("Failed to adjust vendor wallet balance", map[string]any{
			"user_id": userID,
			"delta":   deltaMinor,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Vendor wallet not found during balance adjustment", map[string]any{
			"user_id": userID,
		})
		return errs.ErrWalletNotFound
	}

	r.logger.Debug("Vendor wallet balance adjusted", map[string]any{
		"user_id": userID,
		"delta":   entity.MinorToMajorString(deltaMinor),
	})
	return nil
}
