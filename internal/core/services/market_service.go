package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
)

type marketService struct {
	rateProvider  portssvc.RateProvider
	goldProvider  portssvc.GoldProvider
	defaultMargin decimal.Decimal
}

// NewMarketService creates a new market-data service. defaultMargin is the
// percent markup applied when a margin request carries none.
func NewMarketService(rateProvider portssvc.RateProvider, goldProvider portssvc.GoldProvider, defaultMargin decimal.Decimal) portssvc.MarketSvcFacade {
	return &marketService{
		rateProvider:  rateProvider,
		goldProvider:  goldProvider,
		defaultMargin: defaultMargin,
	}
}

func (s *marketService) LiveRates(ctx context.Context, source string, currencies []string) (*domain.LiveRates, error) {
	return s.rateProvider.LiveRates(ctx, source, currencies)
}

func (s *marketService) HistoricalRates(ctx context.Context, source, currency string, days int) ([]domain.RatePoint, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive: %w", apperrors.ErrValidation)
	}
	return s.rateProvider.HistoricalRates(ctx, source, currency, days)
}

// Margin returns the official rate alongside the platform rate with the
// percent markup applied.
func (s *marketService) Margin(ctx context.Context, source, currency string, percent decimal.Decimal) (*domain.MarginInfo, error) {
	if percent.IsZero() {
		percent = s.defaultMargin
	}
	if percent.IsNegative() {
		return nil, fmt.Errorf("margin percent must not be negative: %w", apperrors.ErrValidation)
	}

	live, err := s.rateProvider.LiveRates(ctx, source, []string{currency})
	if err != nil {
		return nil, err
	}
	rate, ok := live.Quotes[source+currency]
	if !ok {
		return nil, fmt.Errorf("no quote for pair %s%s: %w", source, currency, apperrors.ErrUpstream)
	}

	markup := decimal.NewFromInt(1).Add(percent.Div(decimal.NewFromInt(100)))
	return &domain.MarginInfo{
		Base:          source,
		Currency:      currency,
		OfficialRate:  rate,
		PlatformRate:  rate.Mul(markup).Round(6),
		MarkupPercent: percent,
	}, nil
}

func (s *marketService) GoldSpot(ctx context.Context) (*domain.GoldQuote, error) {
	return s.goldProvider.Spot(ctx)
}

func (s *marketService) GoldHistory(ctx context.Context, days int) (*domain.GoldHistory, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive: %w", apperrors.ErrValidation)
	}
	return s.goldProvider.History(ctx, days)
}

// Dashboard fetches the live quotes and the gold spot for a single combined
// view. Both fetches must succeed.
func (s *marketService) Dashboard(ctx context.Context, source string, currencies []string) (*domain.MarketDashboard, error) {
	live, err := s.rateProvider.LiveRates(ctx, source, currencies)
	if err != nil {
		return nil, err
	}
	gold, err := s.goldProvider.Spot(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.MarketDashboard{Rates: live, Gold: gold}, nil
}
