package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleAuth  GoogleAuthSvcFacade
	Wallet      WalletSvcFacade
	Order       OrderSvcFacade
	Escrow      EscrowSvcFacade
	Rating      RatingSvcFacade
	Conversion  ConversionSvcFacade
	Trigger     TriggerSvcFacade
	Market      MarketSvcFacade
	Forecast    ForecastSvcFacade
	Location    LocationSvcFacade
	Recognition RecognitionSvcFacade
}
