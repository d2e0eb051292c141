package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
	"github.com/zein-l/Currency-exchange-backend/internal/utils/mapping"
)

// PgxEscrowRepository persists escrows and runs the release protocol.
type PgxEscrowRepository struct {
	BaseRepository
	walletRepo portsrepo.WalletTxRepositoryFacade
}

// newPgxEscrowRepository creates a new repository for escrow data. The wallet
// repository is injected so the release credit runs on the same transaction.
func newPgxEscrowRepository(pool *pgxpool.Pool, walletRepo portsrepo.WalletTxRepositoryFacade) portsrepo.EscrowRepositoryFacade {
	return &PgxEscrowRepository{
		BaseRepository: BaseRepository{Pool: pool},
		walletRepo:     walletRepo,
	}
}

var _ portsrepo.EscrowRepositoryFacade = (*PgxEscrowRepository)(nil)

const escrowColumns = `escrow_id, order_id, buyer_id, seller_id, amount, price, target_currency, status, created_at, last_updated_at`

func scanEscrow(row pgx.Row) (*models.Escrow, error) {
	var m models.Escrow
	err := row.Scan(&m.EscrowID, &m.OrderID, &m.BuyerID, &m.SellerID,
		&m.Amount, &m.Price, &m.TargetCurrency, &m.Status, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindEscrowByID retrieves an escrow by its ID.
func (r *PgxEscrowRepository) FindEscrowByID(ctx context.Context, escrowID string) (*domain.Escrow, error) {
	m, err := scanEscrow(r.Pool.QueryRow(ctx,
		`SELECT `+escrowColumns+` FROM escrows WHERE escrow_id = $1;`, escrowID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find escrow %s: %w", escrowID, err)
	}
	e := mapping.ToDomainEscrow(*m)
	return &e, nil
}

// FindEscrowByOrderID retrieves the escrow created for an order, if any.
func (r *PgxEscrowRepository) FindEscrowByOrderID(ctx context.Context, orderID string) (*domain.Escrow, error) {
	m, err := scanEscrow(r.Pool.QueryRow(ctx,
		`SELECT `+escrowColumns+` FROM escrows WHERE order_id = $1;`, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find escrow for order %s: %w", orderID, err)
	}
	e := mapping.ToDomainEscrow(*m)
	return &e, nil
}

// ReleaseEscrow runs the whole release protocol as one transaction: lock the
// escrow row, verify the caller is the seller and the escrow is still PENDING,
// credit the buyer's target-currency wallet by amount*price and flip the
// escrow to RELEASED. The row lock serializes a double release; the second
// caller observes RELEASED and gets ErrConflict.
func (r *PgxEscrowRepository) ReleaseEscrow(ctx context.Context, escrowID, callerID string, now time.Time) (*domain.Escrow, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m, err := scanEscrow(tx.QueryRow(ctx,
		`SELECT `+escrowColumns+` FROM escrows WHERE escrow_id = $1 FOR UPDATE;`, escrowID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock escrow %s: %w", escrowID, err)
	}

	if m.SellerID != callerID {
		return nil, fmt.Errorf("escrow %s can only be released by the seller: %w", escrowID, apperrors.ErrForbidden)
	}
	if m.Status != models.EscrowPending {
		return nil, fmt.Errorf("escrow %s is %s: %w", escrowID, m.Status, apperrors.ErrConflict)
	}

	// The buyer paid amount in the base currency at accept time; the payout
	// is amount*price in the target currency.
	payout := m.Amount.Mul(m.Price)
	if err := r.walletRepo.CreditBalanceInTx(ctx, tx, m.BuyerID, m.TargetCurrency, payout, now); err != nil {
		return nil, err
	}

	ct, err := tx.Exec(ctx,
		`UPDATE escrows SET status = $2, last_updated_at = $3 WHERE escrow_id = $1 AND status = $4;`,
		escrowID, models.EscrowReleased, now, models.EscrowPending,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to release escrow %s: %w", escrowID, err)
	}
	if ct.RowsAffected() == 0 {
		// Unreachable while the row lock is held.
		return nil, fmt.Errorf("escrow %s changed underneath release: %w", escrowID, apperrors.ErrConflict)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	m.Status = models.EscrowReleased
	m.LastUpdatedAt = now
	e := mapping.ToDomainEscrow(*m)
	return &e, nil
}
