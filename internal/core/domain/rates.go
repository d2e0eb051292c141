package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LiveRates is a snapshot of quotes from the market-data provider, keyed by
// the concatenated pair code (e.g. "USDEUR").
type LiveRates struct {
	Source    string                     `json:"source"`
	Timestamp string                     `json:"timestamp"` // Provider-reported quote date
	Quotes    map[string]decimal.Decimal `json:"quotes"`
}

// RatePoint is one (date, rate) observation in a historical series.
type RatePoint struct {
	Date time.Time       `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

// MarginInfo is an official rate with the platform markup applied.
type MarginInfo struct {
	Base          string          `json:"base"`
	Currency      string          `json:"currency"`
	OfficialRate  decimal.Decimal `json:"officialRate"`
	PlatformRate  decimal.Decimal `json:"platformRate"`
	MarkupPercent decimal.Decimal `json:"markupPercent"`
}

// TradeSuggestion is the advisory signal attached to a forecast.
type TradeSuggestion string

const (
	SuggestBuy  TradeSuggestion = "BUY"
	SuggestSell TradeSuggestion = "SELL"
	SuggestHold TradeSuggestion = "HOLD"
)

// MarketDashboard rolls the live currency quotes and the gold spot price into
// one view.
type MarketDashboard struct {
	Rates *LiveRates `json:"rates"`
	Gold  *GoldQuote `json:"gold"`
}

// GoldQuote is a spot price for the gold futures symbol.
type GoldQuote struct {
	Symbol   string          `json:"symbol"`
	Currency string          `json:"currency"`
	Price    decimal.Decimal `json:"price"`
}

// GoldHistory is a dated series of gold closing prices.
type GoldHistory struct {
	Symbol    string      `json:"symbol"`
	Currency  string      `json:"currency"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Prices    []RatePoint `json:"prices"`
}
