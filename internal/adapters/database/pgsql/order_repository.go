package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
	"github.com/zein-l/Currency-exchange-backend/internal/utils/mapping"
)

// PgxOrderRepository persists orders and runs the acceptance protocol.
type PgxOrderRepository struct {
	BaseRepository
	walletRepo portsrepo.WalletTxRepositoryFacade
}

// newPgxOrderRepository creates a new repository for order data. The wallet
// repository is injected so the acceptance debit runs on the same transaction.
func newPgxOrderRepository(pool *pgxpool.Pool, walletRepo portsrepo.WalletTxRepositoryFacade) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
		walletRepo:     walletRepo,
	}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

const orderColumns = `order_id, owner_id, side, base_currency, target_currency, amount, price, status, created_at, last_updated_at`

// SaveOrder inserts a new order.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO orders (`+orderColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.OrderID, m.OwnerID, m.Side, m.BaseCurrency, m.TargetCurrency,
		m.Amount, m.Price, m.Status, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save order %s: %w", m.OrderID, err)
	}
	return nil
}

// FindOrderByID retrieves an order by its ID.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var m models.Order
	err := r.Pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_id = $1;`, orderID,
	).Scan(&m.OrderID, &m.OwnerID, &m.Side, &m.BaseCurrency, &m.TargetCurrency,
		&m.Amount, &m.Price, &m.Status, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}
	o := mapping.ToDomainOrder(m)
	return &o, nil
}

// ListOpenOrders returns OPEN orders in creation order.
func (r *PgxOrderRepository) ListOpenOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY created_at, order_id;`,
		models.OrderOpen,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query open orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var m models.Order
		if err := rows.Scan(&m.OrderID, &m.OwnerID, &m.Side, &m.BaseCurrency, &m.TargetCurrency,
			&m.Amount, &m.Price, &m.Status, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating order rows: %w", err)
	}
	return mapping.ToDomainOrders(orders), nil
}

// AcceptOrder runs the whole acceptance protocol as one transaction:
// lock the order row, validate it is OPEN and not the acceptor's own, debit
// the acceptor's base-currency wallet, flip the order to COMPLETED and insert
// the PENDING escrow. The row lock serializes concurrent accepts; the losing
// acceptor observes the flipped status and gets ErrConflict. Failure at any
// step rolls the whole transaction back, so a debit can never exist without
// its escrow.
func (r *PgxOrderRepository) AcceptOrder(ctx context.Context, orderID, acceptorID string, now time.Time) (*domain.Escrow, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var m models.Order
	err = tx.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_id = $1 FOR UPDATE;`, orderID,
	).Scan(&m.OrderID, &m.OwnerID, &m.Side, &m.BaseCurrency, &m.TargetCurrency,
		&m.Amount, &m.Price, &m.Status, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock order %s: %w", orderID, err)
	}

	if m.OwnerID == acceptorID {
		return nil, fmt.Errorf("order %s belongs to the acceptor: %w", orderID, apperrors.ErrConflict)
	}
	if m.Status != models.OrderOpen {
		return nil, fmt.Errorf("order %s is %s: %w", orderID, m.Status, apperrors.ErrConflict)
	}

	// Locks the buyer's funds in the order's base currency.
	if err := r.walletRepo.DebitBalanceInTx(ctx, tx, acceptorID, m.BaseCurrency, m.Amount, now); err != nil {
		return nil, err
	}

	ct, err := tx.Exec(ctx,
		`UPDATE orders SET status = $2, last_updated_at = $3 WHERE order_id = $1 AND status = $4;`,
		orderID, models.OrderCompleted, now, models.OrderOpen,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to complete order %s: %w", orderID, err)
	}
	if ct.RowsAffected() == 0 {
		// Unreachable while the row lock is held.
		return nil, fmt.Errorf("order %s changed underneath accept: %w", orderID, apperrors.ErrConflict)
	}

	escrow := models.Escrow{
		EscrowID:       uuid.NewString(),
		OrderID:        m.OrderID,
		BuyerID:        acceptorID,
		SellerID:       m.OwnerID,
		Amount:         m.Amount,
		Price:          m.Price,
		TargetCurrency: m.TargetCurrency,
		Status:         models.EscrowPending,
		AuditFields:    models.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO escrows (escrow_id, order_id, buyer_id, seller_id, amount, price, target_currency, status, created_at, last_updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		escrow.EscrowID, escrow.OrderID, escrow.BuyerID, escrow.SellerID,
		escrow.Amount, escrow.Price, escrow.TargetCurrency, escrow.Status,
		escrow.CreatedAt, escrow.LastUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create escrow for order %s: %w", orderID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	e := mapping.ToDomainEscrow(escrow)
	return &e, nil
}

// CancelOrder flips an OPEN order to CANCELLED, owner-only.
func (r *PgxOrderRepository) CancelOrder(ctx context.Context, orderID, ownerID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var dbOwner string
	var status models.OrderStatus
	err = tx.QueryRow(ctx,
		`SELECT owner_id, status FROM orders WHERE order_id = $1 FOR UPDATE;`, orderID,
	).Scan(&dbOwner, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock order %s: %w", orderID, err)
	}
	if dbOwner != ownerID {
		return fmt.Errorf("order %s is not owned by caller: %w", orderID, apperrors.ErrForbidden)
	}
	if status != models.OrderOpen {
		return fmt.Errorf("order %s is %s: %w", orderID, status, apperrors.ErrConflict)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE orders SET status = $2, last_updated_at = $3 WHERE order_id = $1 AND status = $4;`,
		orderID, models.OrderCancelled, now, models.OrderOpen,
	); err != nil {
		return fmt.Errorf("failed to cancel order %s: %w", orderID, err)
	}

	return r.Commit(ctx, tx)
}
