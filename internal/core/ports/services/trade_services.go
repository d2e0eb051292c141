package services

import (
	"context"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
)

// WalletSvcFacade defines wallet operations exposed to handlers.
type WalletSvcFacade interface {
	// Deposit credits the user's wallet and returns the updated balance.
	Deposit(ctx context.Context, userID string, req dto.DepositRequest) (*domain.WalletBalance, error)
	ListBalances(ctx context.Context, userID string) ([]domain.WalletBalance, error)
	GetBalance(ctx context.Context, userID, currency string) (*domain.WalletBalance, error)
}

// OrderSvcFacade defines order book operations exposed to handlers.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, ownerID string, req dto.CreateOrderRequest) (*domain.Order, error)
	ListOpenOrders(ctx context.Context) ([]domain.Order, error)
	// AcceptOrder runs the full acceptance protocol and returns the PENDING
	// escrow created for the trade.
	AcceptOrder(ctx context.Context, orderID, acceptorID string) (*domain.Escrow, error)
	CancelOrder(ctx context.Context, orderID, ownerID string) error
}

// EscrowSvcFacade defines escrow operations exposed to handlers.
type EscrowSvcFacade interface {
	GetEscrowByID(ctx context.Context, escrowID string) (*domain.Escrow, error)
	// ReleaseEscrow settles the trade: seller-only, PENDING-only.
	ReleaseEscrow(ctx context.Context, escrowID, callerID string) (*domain.Escrow, error)
}
