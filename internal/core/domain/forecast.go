package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastPoint is one predicted observation. Lower and Upper equal Yhat when
// the fitted model produces no confidence interval.
type ForecastPoint struct {
	Date  time.Time       `json:"date"`
	Yhat  decimal.Decimal `json:"yhat"`
	Lower decimal.Decimal `json:"yhatLower"`
	Upper decimal.Decimal `json:"yhatUpper"`
}

// RateForecast is a predicted rate series with an advisory signal derived by
// comparing the first forecast point against the latest historical rate.
type RateForecast struct {
	Source     string          `json:"source"`
	Currency   string          `json:"currency"`
	Suggestion TradeSuggestion `json:"suggestion"`
	Points     []ForecastPoint `json:"points"`
}
