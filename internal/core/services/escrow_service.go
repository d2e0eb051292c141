package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

type escrowService struct {
	escrowRepo portsrepo.EscrowRepositoryFacade
}

// NewEscrowService creates a new escrow service.
func NewEscrowService(escrowRepo portsrepo.EscrowRepositoryFacade) portssvc.EscrowSvcFacade {
	return &escrowService{escrowRepo: escrowRepo}
}

func (s *escrowService) GetEscrowByID(ctx context.Context, escrowID string) (*domain.Escrow, error) {
	escrow, err := s.escrowRepo.FindEscrowByID(ctx, escrowID)
	if err != nil {
		return nil, err
	}
	return escrow, nil
}

// ReleaseEscrow runs the release protocol in the repository. Seller-only,
// PENDING-only; the repository enforces both inside the settlement transaction.
func (s *escrowService) ReleaseEscrow(ctx context.Context, escrowID, callerID string) (*domain.Escrow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	escrow, err := s.escrowRepo.ReleaseEscrow(ctx, escrowID, callerID, time.Now())
	if err != nil {
		logger.Warn("Escrow release failed", slog.String("escrow_id", escrowID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Escrow released", slog.String("escrow_id", escrowID), slog.String("buyer_id", escrow.BuyerID))
	return escrow, nil
}
