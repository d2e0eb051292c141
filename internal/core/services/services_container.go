package services

import (
	"github.com/shopspring/decimal"

	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/platform/config"
	"github.com/zein-l/Currency-exchange-backend/internal/utils"
)

// Providers bundles the external collaborators the services depend on.
type Providers struct {
	Rates      portssvc.RateProvider
	Gold       portssvc.GoldProvider
	Geo        portssvc.GeoLocator
	Recognizer portssvc.CurrencyRecognizer
	Posthog    *utils.PosthogClientWrapper
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, providers Providers) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleAuth = NewGoogleAuthService(cfg)

	container.Wallet = NewWalletService(repos.WalletRepo)
	container.Order = NewOrderService(repos.OrderRepo)
	container.Escrow = NewEscrowService(repos.EscrowRepo)
	container.Rating = NewRatingService(repos.RatingRepo, repos.UserRepo)
	container.Conversion = NewConversionService(repos.ConversionRepo, providers.Posthog)
	container.Trigger = NewTriggerService(repos.TriggerRepo, providers.Rates)

	container.Market = NewMarketService(providers.Rates, providers.Gold, decimal.NewFromFloat(cfg.DefaultMarginPercent))
	container.Forecast = NewForecastService(providers.Rates)
	container.Location = NewLocationService(providers.Geo)
	container.Recognition = NewRecognitionService(providers.Recognizer)

	return container
}
