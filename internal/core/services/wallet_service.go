package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

type walletService struct {
	walletRepo portsrepo.WalletRepositoryFacade
}

// NewWalletService creates a new wallet service.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade) portssvc.WalletSvcFacade {
	return &walletService{walletRepo: walletRepo}
}

// Deposit credits the user's wallet in the requested currency, creating the
// balance row on first use.
func (s *walletService) Deposit(ctx context.Context, userID string, req dto.DepositRequest) (*domain.WalletBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("deposit amount must be positive: %w", apperrors.ErrValidation)
	}

	balance, err := s.walletRepo.CreditBalance(ctx, userID, req.Currency, req.Amount, time.Now())
	if err != nil {
		logger.Error("Failed to credit wallet", slog.String("currency", req.Currency), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to deposit: %w", err)
	}

	logger.Info("Deposit recorded", slog.String("currency", req.Currency), slog.String("amount", req.Amount.String()))
	return balance, nil
}

func (s *walletService) ListBalances(ctx context.Context, userID string) ([]domain.WalletBalance, error) {
	balances, err := s.walletRepo.FindBalancesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	return balances, nil
}

// GetBalance returns the user's balance in one currency. A currency the user
// never held reads as zero, not as an error.
func (s *walletService) GetBalance(ctx context.Context, userID, currency string) (*domain.WalletBalance, error) {
	balance, err := s.walletRepo.FindBalance(ctx, userID, currency)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &domain.WalletBalance{
			UserID:   userID,
			Currency: currency,
			Balance:  decimal.Zero,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return balance, nil
}
