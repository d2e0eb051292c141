package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/zein-l/Currency-exchange-backend/cmd/docs"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
	"github.com/zein-l/Currency-exchange-backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public routes: auth, open order book, market data, locale
	registerAuthRoutes(r, services)
	registerPublicOrderRoutes(r, services.Order)
	registerPublicRateRoutes(r, services)
	registerPublicTriggerRoutes(r, services.Trigger)
	registerLocationRoutes(r, services.Location)
	registerRecognitionRoutes(r, services.Recognition)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerWalletRoutes(v1, services.Wallet)
	registerOrderRoutes(v1, services.Order)
	registerEscrowRoutes(v1, services.Escrow)
	registerRatingRoutes(v1, services.Rating)
	registerConversionRoutes(v1, cfg, services.Conversion)
	registerTriggerRoutes(v1, services.Trigger)
	registerMarginRoutes(v1, services.Market)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
