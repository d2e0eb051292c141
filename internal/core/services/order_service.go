package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

type orderService struct {
	orderRepo portsrepo.OrderRepositoryFacade
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) CreateOrder(ctx context.Context, ownerID string, req dto.CreateOrderRequest) (*domain.Order, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("order amount must be positive: %w", apperrors.ErrValidation)
	}
	if !req.Price.IsPositive() {
		return nil, fmt.Errorf("order price must be positive: %w", apperrors.ErrValidation)
	}
	if req.BaseCurrency == req.TargetCurrency {
		return nil, fmt.Errorf("base and target currency must differ: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	order := domain.Order{
		OrderID:        uuid.NewString(),
		OwnerID:        ownerID,
		Side:           domain.OrderSide(req.Side),
		BaseCurrency:   req.BaseCurrency,
		TargetCurrency: req.TargetCurrency,
		Amount:         req.Amount,
		Price:          req.Price,
		Status:         domain.OrderOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		logger.Error("Failed to save order", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	logger.Info("Order created", slog.String("order_id", order.OrderID), slog.String("side", req.Side))
	return &order, nil
}

func (s *orderService) ListOpenOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListOpenOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open orders: %w", err)
	}
	return orders, nil
}

// AcceptOrder runs the acceptance protocol in the repository. The repository
// serializes concurrent accepts; this layer only routes and logs.
func (s *orderService) AcceptOrder(ctx context.Context, orderID, acceptorID string) (*domain.Escrow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	escrow, err := s.orderRepo.AcceptOrder(ctx, orderID, acceptorID, time.Now())
	if err != nil {
		logger.Warn("Order acceptance failed", slog.String("order_id", orderID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Order accepted", slog.String("order_id", orderID), slog.String("escrow_id", escrow.EscrowID))
	return escrow, nil
}

func (s *orderService) CancelOrder(ctx context.Context, orderID, ownerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.orderRepo.CancelOrder(ctx, orderID, ownerID, time.Now()); err != nil {
		logger.Warn("Order cancellation failed", slog.String("order_id", orderID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Order cancelled", slog.String("order_id", orderID))
	return nil
}
