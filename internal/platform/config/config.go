package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	// Upstream providers. Empty base URLs select each provider's public
	// endpoint; the classifier has no public endpoint and its features are
	// unavailable until configured.
	RatesBaseURL      string `mapstructure:"RATES_BASE_URL"`
	GoldBaseURL       string `mapstructure:"GOLD_BASE_URL"`
	GeoBaseURL        string `mapstructure:"GEO_BASE_URL"`
	ClassifierBaseURL string `mapstructure:"CLASSIFIER_BASE_URL"`

	// Platform margin applied when no explicit percent is requested.
	DefaultMarginPercent float64 `mapstructure:"DEFAULT_MARGIN_PERCENT"`

	// Rate limiting, requests per minute for the mutating ledger endpoints.
	ConversionWriteLimitPerMin int64 `mapstructure:"CONVERSION_WRITE_LIMIT_PER_MIN"`
	ConversionReadLimitPerMin  int64 `mapstructure:"CONVERSION_READ_LIMIT_PER_MIN"`

	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "currency-exchange-backend")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("RATES_BASE_URL", "")
	viper.SetDefault("GOLD_BASE_URL", "")
	viper.SetDefault("GEO_BASE_URL", "")
	viper.SetDefault("CLASSIFIER_BASE_URL", "")
	viper.SetDefault("DEFAULT_MARGIN_PERCENT", 2.0)
	viper.SetDefault("CONVERSION_WRITE_LIMIT_PER_MIN", 10)
	viper.SetDefault("CONVERSION_READ_LIMIT_PER_MIN", 5)
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.RatesBaseURL = viper.GetString("RATES_BASE_URL")
	cfg.GoldBaseURL = viper.GetString("GOLD_BASE_URL")
	cfg.GeoBaseURL = viper.GetString("GEO_BASE_URL")
	cfg.ClassifierBaseURL = viper.GetString("CLASSIFIER_BASE_URL")
	cfg.DefaultMarginPercent = viper.GetFloat64("DEFAULT_MARGIN_PERCENT")
	cfg.ConversionWriteLimitPerMin = viper.GetInt64("CONVERSION_WRITE_LIMIT_PER_MIN")
	cfg.ConversionReadLimitPerMin = viper.GetInt64("CONVERSION_READ_LIMIT_PER_MIN")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
