package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// WalletRepositoryFacade defines the only operations that may mutate wallet
// balances. Amount validation (> 0) happens in the service layer; the
// repository guarantees atomicity of each mutation against concurrent
// mutations of the same (user, currency) row.
type WalletRepositoryFacade interface {
	// CreditBalance increases the balance, creating the row at zero first if
	// absent, and returns the updated balance.
	CreditBalance(ctx context.Context, userID, currency string, amount decimal.Decimal, now time.Time) (*domain.WalletBalance, error)
	// DebitBalance decreases the balance. Returns apperrors.ErrNotFound when
	// no row exists for the pair and apperrors.ErrInsufficientFunds when the
	// balance is below the requested amount; either way nothing changes.
	DebitBalance(ctx context.Context, userID, currency string, amount decimal.Decimal, now time.Time) error
	// FindBalance reads one balance. Reads never create rows.
	FindBalance(ctx context.Context, userID, currency string) (*domain.WalletBalance, error)
	FindBalancesByUserID(ctx context.Context, userID string) ([]domain.WalletBalance, error)
}

// WalletTxRepositoryFacade exposes the same mutations inside a caller-owned
// database transaction. The order and escrow repositories use these to make
// the debit/credit part of their single-transaction protocols.
type WalletTxRepositoryFacade interface {
	WalletRepositoryFacade
	CreditBalanceInTx(ctx context.Context, tx pgx.Tx, userID, currency string, amount decimal.Decimal, now time.Time) error
	DebitBalanceInTx(ctx context.Context, tx pgx.Tx, userID, currency string, amount decimal.Decimal, now time.Time) error
}
