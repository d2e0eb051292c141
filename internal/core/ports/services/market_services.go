package services

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
)

// MarketSvcFacade exposes market-data views backed by external providers.
// Provider failures surface as ErrUpstream and have no side effects.
type MarketSvcFacade interface {
	LiveRates(ctx context.Context, source string, currencies []string) (*domain.LiveRates, error)
	HistoricalRates(ctx context.Context, source, currency string, days int) ([]domain.RatePoint, error)
	Margin(ctx context.Context, source, currency string, percent decimal.Decimal) (*domain.MarginInfo, error)
	GoldSpot(ctx context.Context) (*domain.GoldQuote, error)
	GoldHistory(ctx context.Context, days int) (*domain.GoldHistory, error)
	// Dashboard combines live quotes and the gold spot; either provider
	// failing fails the whole view.
	Dashboard(ctx context.Context, source string, currencies []string) (*domain.MarketDashboard, error)
}

// ForecastSvcFacade produces a rate forecast with a trade suggestion.
type ForecastSvcFacade interface {
	Forecast(ctx context.Context, source, currency string, historyDays, forecastDays int) (*domain.RateForecast, error)
}

// TriggerSvcFacade manages rate triggers and their evaluation.
type TriggerSvcFacade interface {
	CreateTrigger(ctx context.Context, req dto.CreateTriggerRequest) (*domain.RateTrigger, error)
	// CheckTriggers evaluates every untriggered trigger against live rates.
	// Per-trigger evaluation failures are collected in the outcome, not
	// swallowed; the pass itself only fails on storage errors.
	CheckTriggers(ctx context.Context) (*domain.TriggerCheckOutcome, error)
}

// LocationSvcFacade infers a currency context from a client IP.
type LocationSvcFacade interface {
	DetectCurrency(ctx context.Context, ip string) (*domain.CurrencyLocale, error)
}

// RecognitionSvcFacade classifies a banknote image via the external model server.
type RecognitionSvcFacade interface {
	RecognizeCurrency(ctx context.Context, filename string, image io.Reader) (string, error)
}
