package wallet

import (
	"context"
	"errors"

	"github.com/voyagehub/payment-ledger/internal/domain/entity"
	errs "github.com/voyagehub/payment-ledger/internal/domain/error"
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	"github.com/voyagehub/payment-ledger/internal/domain/port/persistence"
)

// BalanceView is what the API exposes for a vendor wallet
type BalanceView struct {
	UserID  uint64
	Balance string // major units, 2 decimal places
}

// Service exposes read and provisioning operations on vendor wallets.
// Balance mutations happen only inside ledger reconciliation and are not
// reachable through this service.
type Service struct {
	walletRepo   persistence.WalletRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewWalletService creates a new wallet service
func NewWalletService(
	walletRepo persistence.WalletRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		walletRepo:   walletRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetBalance returns the vendor's wallet balance formatted in major units
func (s *Service) GetBalance(ctx context.Context, userID uint64) (*BalanceView, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidVendorID
	}

	w, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &BalanceView{
		UserID:  w.UserID,
		Balance: w.GetBalance(),
	}, nil
}

// EnsureWallet returns the vendor's wallet, creating an empty one if none
// exists yet. A concurrent create losing the race falls back to reading the
// winner's row.
func (s *Service) EnsureWallet(ctx context.Context, userID uint64) (*entity.VendorWallet, error) {
	w, err := s.walletRepo.GetByUserID(ctx, userID)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, errs.ErrWalletNotFound) {
		return nil, err
	}

	fresh, err := entity.NewVendorWallet(userID, 0, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.walletRepo.Create(ctx, fresh); err != nil {
		if errors.Is(err, errs.ErrConstraintViolation) {
			return s.walletRepo.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	s.logger.Info("Vendor wallet provisioned", map[string]any{
		"user_id": userID,
	})

	return fresh, nil
}
