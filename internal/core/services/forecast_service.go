package services

import (
	"context"
	"fmt"

	"github.com/markcheno/go-talib"
	"github.com/shopspring/decimal"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
)

// Holt smoothing coefficients. Level reacts faster than trend so one-off
// spikes don't bend the projected slope.
const (
	holtAlpha = 0.5
	holtBeta  = 0.3

	emaPeriod = 5
)

type forecastService struct {
	rateProvider portssvc.RateProvider
}

// NewForecastService creates a new forecast service.
func NewForecastService(rateProvider portssvc.RateProvider) portssvc.ForecastSvcFacade {
	return &forecastService{rateProvider: rateProvider}
}

// Forecast fits a Holt linear trend (double exponential smoothing, no
// seasonality) to the trailing history and projects forecastDays ahead. The
// attached suggestion compares the first projected value against the
// EMA-smoothed latest historical rate.
func (s *forecastService) Forecast(ctx context.Context, source, currency string, historyDays, forecastDays int) (*domain.RateForecast, error) {
	if historyDays <= 1 {
		return nil, fmt.Errorf("history_days must be at least 2: %w", apperrors.ErrValidation)
	}
	if forecastDays <= 0 {
		return nil, fmt.Errorf("forecast_days must be positive: %w", apperrors.ErrValidation)
	}

	history, err := s.rateProvider.HistoricalRates(ctx, source, currency, historyDays)
	if err != nil {
		return nil, err
	}
	if len(history) < 2 {
		return nil, fmt.Errorf("not enough history to fit a trend: %w", apperrors.ErrNoData)
	}

	series := make([]float64, len(history))
	for i, p := range history {
		series[i], _ = p.Rate.Float64()
	}

	level, trend := fitHolt(series)

	lastDate := history[len(history)-1].Date
	points := make([]domain.ForecastPoint, forecastDays)
	for h := 1; h <= forecastDays; h++ {
		yhat := decimal.NewFromFloat(level + float64(h)*trend).Round(6)
		points[h-1] = domain.ForecastPoint{
			Date:  lastDate.AddDate(0, 0, h),
			Yhat:  yhat,
			Lower: yhat,
			Upper: yhat,
		}
	}

	return &domain.RateForecast{
		Source:     source,
		Currency:   currency,
		Suggestion: suggest(series, points[0].Yhat),
		Points:     points,
	}, nil
}

// fitHolt runs double exponential smoothing over the series and returns the
// final level and trend components.
func fitHolt(series []float64) (level, trend float64) {
	level = series[0]
	trend = series[1] - series[0]
	for _, y := range series[1:] {
		prevLevel := level
		level = holtAlpha*y + (1-holtAlpha)*(prevLevel+trend)
		trend = holtBeta*(level-prevLevel) + (1-holtBeta)*trend
	}
	return level, trend
}

// suggest compares the first projected value against the smoothed latest
// historical rate. The EMA baseline keeps a single noisy closing quote from
// flipping the signal.
func suggest(series []float64, firstForecast decimal.Decimal) domain.TradeSuggestion {
	baseline := series[len(series)-1]
	if len(series) >= emaPeriod {
		ema := talib.Ema(series, emaPeriod)
		baseline = ema[len(ema)-1]
	}

	switch last := decimal.NewFromFloat(baseline).Round(6); {
	case firstForecast.GreaterThan(last):
		return domain.SuggestBuy
	case firstForecast.LessThan(last):
		return domain.SuggestSell
	default:
		return domain.SuggestHold
	}
}
