package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
	"github.com/zein-l/Currency-exchange-backend/internal/utils"
)

// DeriveWindow is the trailing window the derived rate is aggregated over.
const DeriveWindow = 72 * time.Hour

type conversionService struct {
	conversionRepo portsrepo.ConversionRepositoryFacade
	posthogClient  *utils.PosthogClientWrapper
}

// NewConversionService creates a new conversion service.
func NewConversionService(conversionRepo portsrepo.ConversionRepositoryFacade, posthogClient *utils.PosthogClientWrapper) portssvc.ConversionSvcFacade {
	return &conversionService{conversionRepo: conversionRepo, posthogClient: posthogClient}
}

func (s *conversionService) RecordConversion(ctx context.Context, userID string, req dto.CreateConversionRequest) (*domain.Conversion, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.USDAmount.IsPositive() {
		return nil, fmt.Errorf("usd amount must be positive: %w", apperrors.ErrValidation)
	}
	if !req.LBPAmount.IsPositive() {
		return nil, fmt.Errorf("lbp amount must be positive: %w", apperrors.ErrValidation)
	}

	conversion := domain.Conversion{
		ConversionID: uuid.NewString(),
		UserID:       userID,
		USDAmount:    req.USDAmount,
		LBPAmount:    req.LBPAmount,
		USDToLBP:     *req.USDToLBP,
		RecordedAt:   time.Now(),
	}

	if err := s.conversionRepo.SaveConversion(ctx, conversion); err != nil {
		logger.Error("Failed to save conversion", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record conversion: %w", err)
	}

	// Best-effort analytics mirror; a sink failure never affects the ledger.
	if s.posthogClient != nil {
		s.posthogClient.Enqueue(userID, "conversion_recorded", map[string]any{
			"usd_amount": conversion.USDAmount.String(),
			"lbp_amount": conversion.LBPAmount.String(),
			"usd_to_lbp": conversion.USDToLBP,
		})
	}

	logger.Info("Conversion recorded", slog.String("conversion_id", conversion.ConversionID), slog.Bool("usd_to_lbp", conversion.USDToLBP))
	return &conversion, nil
}

func (s *conversionService) ListUserConversions(ctx context.Context, userID string) ([]domain.Conversion, error) {
	conversions, err := s.conversionRepo.FindConversionsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}
	return conversions, nil
}

func (s *conversionService) LatestConversion(ctx context.Context, userID string) (*domain.Conversion, error) {
	conversion, err := s.conversionRepo.FindLatestConversionByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return conversion, nil
}

// DeriveRate aggregates the trailing window of USD->LBP conversions into a
// volume-weighted rate: total LBP over total USD.
func (s *conversionService) DeriveRate(ctx context.Context, window time.Duration) (*domain.DerivedRate, error) {
	if window <= 0 {
		window = DeriveWindow
	}
	since := time.Now().Add(-window)

	usdTotal, lbpTotal, count, err := s.conversionRepo.SumUSDToLBPSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate conversion window: %w", err)
	}
	if count == 0 || usdTotal.IsZero() || lbpTotal.IsZero() {
		return nil, fmt.Errorf("no conversions in the trailing window: %w", apperrors.ErrNoData)
	}

	usdToLbp := lbpTotal.Div(usdTotal)
	return &domain.DerivedRate{
		USDToLBP: usdToLbp,
		LBPToUSD: decimal.NewFromInt(1).Div(usdToLbp),
	}, nil
}
