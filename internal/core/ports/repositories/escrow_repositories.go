package repositories

import (
	"context"
	"time"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// EscrowRepositoryFacade defines persistence operations for escrows,
// including the release protocol.
type EscrowRepositoryFacade interface {
	FindEscrowByID(ctx context.Context, escrowID string) (*domain.Escrow, error)
	FindEscrowByOrderID(ctx context.Context, orderID string) (*domain.Escrow, error)
	// ReleaseEscrow atomically: locks the escrow, verifies the caller is the
	// named seller and the status is PENDING, credits the buyer's wallet in
	// the target currency by amount*price and flips the escrow to RELEASED.
	// Errors: ErrNotFound, ErrForbidden (caller is not the seller),
	// ErrConflict (already finalized). Any error leaves every row untouched.
	ReleaseEscrow(ctx context.Context, escrowID, callerID string, now time.Time) (*domain.Escrow, error)
}
