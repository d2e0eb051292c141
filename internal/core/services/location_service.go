package services

import (
	"context"
	"log/slog"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

// countryToCurrency maps ISO country codes to their default currency.
// Unknown countries fall back to USD.
var countryToCurrency = map[string]string{
	"US": "USD", "LB": "LBP", "FR": "EUR", "DE": "EUR",
	"GB": "GBP", "AE": "AED", "IN": "INR", "JP": "JPY",
	"CA": "CAD", "TR": "TRY", "EG": "EGP",
}

// travelSuggestions maps a country to the currencies a traveler from there
// most commonly exchanges into.
var travelSuggestions = map[string][]string{
	"LB": {"USD", "EUR", "AED"},
	"FR": {"EUR", "CHF", "GBP"},
	"US": {"CAD", "MXN", "USD"},
	"AE": {"SAR", "KWD", "USD"},
}

var defaultTravelSuggestions = []string{"USD", "EUR"}

type locationService struct {
	geoLocator portssvc.GeoLocator
}

// NewLocationService creates a new location service.
func NewLocationService(geoLocator portssvc.GeoLocator) portssvc.LocationSvcFacade {
	return &locationService{geoLocator: geoLocator}
}

// DetectCurrency resolves the client IP to a currency context. A failing
// geolocation lookup degrades to the US defaults rather than erroring, so the
// endpoint always answers.
func (s *locationService) DetectCurrency(ctx context.Context, ip string) (*domain.CurrencyLocale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	country, err := s.geoLocator.CountryForIP(ctx, ip)
	if err != nil {
		logger.Warn("Geolocation lookup failed, falling back to US", slog.String("ip", ip), slog.String("error", err.Error()))
		country = "US"
	}

	currency, ok := countryToCurrency[country]
	if !ok {
		currency = "USD"
	}
	suggestions, ok := travelSuggestions[country]
	if !ok {
		suggestions = defaultTravelSuggestions
	}

	return &domain.CurrencyLocale{
		IP:                ip,
		Country:           country,
		DefaultCurrency:   currency,
		TravelSuggestions: suggestions,
	}, nil
}
