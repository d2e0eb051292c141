package repositories

import (
	"context"
	"time"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// OrderRepositoryFacade defines persistence operations for orders, including
// the acceptance protocol. AcceptOrder is the serialization point for
// concurrent accepts: the whole protocol runs in one database transaction
// with the order row locked, so at most one acceptor ever succeeds.
type OrderRepositoryFacade interface {
	SaveOrder(ctx context.Context, order domain.Order) error
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	// ListOpenOrders returns OPEN orders in creation order.
	ListOpenOrders(ctx context.Context) ([]domain.Order, error)
	// AcceptOrder atomically: locks the order, verifies it is OPEN and not
	// owned by the acceptor, debits the acceptor's base-currency wallet by
	// the order amount, flips the order to COMPLETED and inserts the PENDING
	// escrow. Errors: ErrNotFound (no such order), ErrConflict (not OPEN, or
	// self-trade), ErrInsufficientFunds / ErrNotFound on the wallet debit.
	// Any error leaves every row untouched.
	AcceptOrder(ctx context.Context, orderID, acceptorID string, now time.Time) (*domain.Escrow, error)
	// CancelOrder flips an OPEN order to CANCELLED. Owner-only; returns
	// ErrForbidden for anyone else and ErrConflict once the order left OPEN.
	CancelOrder(ctx context.Context, orderID, ownerID string, now time.Time) error
}
