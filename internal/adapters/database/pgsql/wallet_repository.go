package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
	"github.com/zein-l/Currency-exchange-backend/internal/utils/mapping"
)

// PgxWalletRepository is the only code path that touches wallet_balances.
// Every mutation is an atomic read-modify-write: credits go through an
// ON CONFLICT arithmetic upsert, debits lock the row before checking funds.
// The schema backs this with UNIQUE (user_id, currency) and CHECK (balance >= 0).
type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet balance data.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletTxRepositoryFacade {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WalletTxRepositoryFacade = (*PgxWalletRepository)(nil)

const creditQuery = `
	INSERT INTO wallet_balances (wallet_id, user_id, currency, balance, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $5)
	ON CONFLICT (user_id, currency)
	DO UPDATE SET balance = wallet_balances.balance + EXCLUDED.balance,
	              last_updated_at = EXCLUDED.last_updated_at
	RETURNING wallet_id, user_id, currency, balance, created_at, last_updated_at;
`

// CreditBalance increases a balance, lazily creating the row. The arithmetic
// happens inside the upsert so concurrent credits never lose updates.
func (r *PgxWalletRepository) CreditBalance(ctx context.Context, userID, currency string, amount decimal.Decimal, now time.Time) (*domain.WalletBalance, error) {
	var m models.WalletBalance
	err := r.Pool.QueryRow(ctx, creditQuery, uuid.NewString(), userID, currency, amount, now).Scan(
		&m.WalletID,
		&m.UserID,
		&m.Currency,
		&m.Balance,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to credit wallet %s/%s: %w", userID, currency, err)
	}
	w := mapping.ToDomainWalletBalance(m)
	return &w, nil
}

// CreditBalanceInTx is CreditBalance running on a caller-owned transaction.
func (r *PgxWalletRepository) CreditBalanceInTx(ctx context.Context, tx pgx.Tx, userID, currency string, amount decimal.Decimal, now time.Time) error {
	if _, err := tx.Exec(ctx, creditQuery, uuid.NewString(), userID, currency, amount, now); err != nil {
		return fmt.Errorf("failed to credit wallet %s/%s in tx: %w", userID, currency, err)
	}
	return nil
}

// DebitBalance decreases a balance inside its own transaction.
func (r *PgxWalletRepository) DebitBalance(ctx context.Context, userID, currency string, amount decimal.Decimal, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.DebitBalanceInTx(ctx, tx, userID, currency, amount, now); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DebitBalanceInTx locks the balance row, verifies sufficient funds and
// applies the debit. A missing row maps to ErrNotFound, an underfunded one to
// ErrInsufficientFunds; in both cases nothing is written.
func (r *PgxWalletRepository) DebitBalanceInTx(ctx context.Context, tx pgx.Tx, userID, currency string, amount decimal.Decimal, now time.Time) error {
	var balance decimal.Decimal
	err := tx.QueryRow(ctx,
		`SELECT balance FROM wallet_balances WHERE user_id = $1 AND currency = $2 FOR UPDATE;`,
		userID, currency,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("no %s balance for user %s: %w", currency, userID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to lock wallet %s/%s: %w", userID, currency, err)
	}

	if balance.LessThan(amount) {
		return fmt.Errorf("balance %s below requested %s: %w", balance, amount, apperrors.ErrInsufficientFunds)
	}

	ct, err := tx.Exec(ctx,
		`UPDATE wallet_balances SET balance = balance - $3, last_updated_at = $4
		 WHERE user_id = $1 AND currency = $2 AND balance >= $3;`,
		userID, currency, amount, now,
	)
	if err != nil {
		return fmt.Errorf("failed to debit wallet %s/%s: %w", userID, currency, err)
	}
	if ct.RowsAffected() == 0 {
		// Unreachable while the row lock is held; kept as a guard on the
		// non-negativity invariant.
		return fmt.Errorf("wallet %s/%s changed underneath debit: %w", userID, currency, apperrors.ErrInsufficientFunds)
	}
	return nil
}

// FindBalance reads one balance. Absent rows map to ErrNotFound; reads never
// create rows.
func (r *PgxWalletRepository) FindBalance(ctx context.Context, userID, currency string) (*domain.WalletBalance, error) {
	var m models.WalletBalance
	err := r.Pool.QueryRow(ctx,
		`SELECT wallet_id, user_id, currency, balance, created_at, last_updated_at
		 FROM wallet_balances WHERE user_id = $1 AND currency = $2;`,
		userID, currency,
	).Scan(&m.WalletID, &m.UserID, &m.Currency, &m.Balance, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find balance %s/%s: %w", userID, currency, err)
	}
	w := mapping.ToDomainWalletBalance(m)
	return &w, nil
}

// FindBalancesByUserID returns every balance row the user has, in currency order.
func (r *PgxWalletRepository) FindBalancesByUserID(ctx context.Context, userID string) ([]domain.WalletBalance, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT wallet_id, user_id, currency, balance, created_at, last_updated_at
		 FROM wallet_balances WHERE user_id = $1 ORDER BY currency;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances for user %s: %w", userID, err)
	}
	defer rows.Close()

	balances := []models.WalletBalance{}
	for rows.Next() {
		var m models.WalletBalance
		if err := rows.Scan(&m.WalletID, &m.UserID, &m.Currency, &m.Balance, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		balances = append(balances, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating balance rows: %w", err)
	}
	return mapping.ToDomainWalletBalances(balances), nil
}
