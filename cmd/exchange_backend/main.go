package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"regexp"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	_ "github.com/zein-l/Currency-exchange-backend/cmd/docs"
	"github.com/zein-l/Currency-exchange-backend/internal/adapters/classifier"
	"github.com/zein-l/Currency-exchange-backend/internal/adapters/database/pgsql"
	"github.com/zein-l/Currency-exchange-backend/internal/adapters/frankfurter"
	"github.com/zein-l/Currency-exchange-backend/internal/adapters/goldprice"
	"github.com/zein-l/Currency-exchange-backend/internal/adapters/ipinfo"
	"github.com/zein-l/Currency-exchange-backend/internal/core/services"
	"github.com/zein-l/Currency-exchange-backend/internal/handlers"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
	"github.com/zein-l/Currency-exchange-backend/internal/platform/config"
	"github.com/zein-l/Currency-exchange-backend/internal/utils"
	"github.com/zein-l/Currency-exchange-backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// @title Currency Exchange Backend API
// @version 1.0
// @description P2P currency exchange with escrowed settlement, conversion ledger and market data.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// ISO 4217 style currency codes on request bindings
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
			return currencyCodeRe.MatchString(fl.Field().String())
		}); err != nil {
			logger.Error("Failed to register currency validator", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()
	if posthogClient.IsInitialized() {
		r.Use(middleware.PosthogMiddleware(posthogClient))
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	providers := services.Providers{
		Rates:      frankfurter.NewClient(cfg.RatesBaseURL, nil),
		Gold:       goldprice.NewClient(cfg.GoldBaseURL, nil),
		Geo:        ipinfo.NewClient(cfg.GeoBaseURL, nil),
		Recognizer: classifier.NewClient(cfg.ClassifierBaseURL, nil),
		Posthog:    posthogClient,
	}
	container := services.NewServiceContainer(cfg, repos, providers)

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending up migrations using a temporary stdlib connection.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
