package services

import (
	"context"
	"io"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// The core calls every external collaborator through one of these narrow
// interfaces; adapters under internal/adapters implement them. A failing
// provider can never corrupt ledger state because no provider is consulted
// inside a storage transaction.

// RateProvider serves live and historical currency rates.
type RateProvider interface {
	LiveRates(ctx context.Context, source string, currencies []string) (*domain.LiveRates, error)
	HistoricalRates(ctx context.Context, source, currency string, days int) ([]domain.RatePoint, error)
}

// GoldProvider serves gold spot and historical prices.
type GoldProvider interface {
	Spot(ctx context.Context) (*domain.GoldQuote, error)
	History(ctx context.Context, days int) (*domain.GoldHistory, error)
}

// GeoLocator resolves a client IP to an ISO country code.
type GeoLocator interface {
	CountryForIP(ctx context.Context, ip string) (string, error)
}

// CurrencyRecognizer classifies a banknote image into a currency label.
type CurrencyRecognizer interface {
	Recognize(ctx context.Context, filename string, image io.Reader) (string, error)
}
