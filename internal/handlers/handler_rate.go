package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/core/services"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

// rateHandler handles HTTP requests for market rates, gold quotes, the
// derived ledger rate and forecasts.
type rateHandler struct {
	marketService     portssvc.MarketSvcFacade
	conversionService portssvc.ConversionSvcFacade
	forecastService   portssvc.ForecastSvcFacade
}

// registerPublicRateRoutes registers the public market-data routes.
func registerPublicRateRoutes(r *gin.Engine, svc *portssvc.ServiceContainer) {
	h := &rateHandler{
		marketService:     svc.Market,
		conversionService: svc.Conversion,
		forecastService:   svc.Forecast,
	}

	rates := r.Group("/rates")
	{
		rates.GET("/live", h.liveRates)
		rates.GET("/dashboard", h.dashboard)
		rates.GET("/derived", h.derivedRate)
		rates.GET("/gold", h.goldSpot)
		rates.GET("/gold/history", h.goldHistory)
		rates.GET("/historical/:currency", h.historicalRates)
		rates.GET("/forecast", h.forecast)
	}
}

// registerMarginRoutes registers the authenticated margin quote route.
func registerMarginRoutes(rg *gin.RouterGroup, marketService portssvc.MarketSvcFacade) {
	h := &rateHandler{marketService: marketService}
	rg.GET("/rates/margin/:currency", h.margin)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return value
}

// liveRates godoc
// @Summary Live currency rates
// @Description Returns the latest quotes from the market-data provider, keyed by pair code.
// @Tags rates
// @Produce json
// @Param source query string false "Source currency" default(USD)
// @Param currencies query string false "Comma-separated target currencies"
// @Success 200 {object} domain.LiveRates
// @Failure 502 {object} ErrorResponse
// @Router /rates/live [get]
func (h *rateHandler) liveRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	source := strings.ToUpper(c.DefaultQuery("source", "USD"))
	var currencies []string
	if raw := c.Query("currencies"); raw != "" {
		currencies = strings.Split(strings.ToUpper(raw), ",")
	}

	live, err := h.marketService.LiveRates(c.Request.Context(), source, currencies)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch live rates")
		return
	}

	c.JSON(http.StatusOK, live)
}

// dashboard godoc
// @Summary Market dashboard
// @Description Returns the live currency quotes and the gold spot price in a single view.
// @Tags rates
// @Produce json
// @Param source query string false "Source currency" default(USD)
// @Param currencies query string false "Comma-separated target currencies"
// @Success 200 {object} domain.MarketDashboard
// @Failure 502 {object} ErrorResponse
// @Router /rates/dashboard [get]
func (h *rateHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	source := strings.ToUpper(c.DefaultQuery("source", "USD"))
	var currencies []string
	if raw := c.Query("currencies"); raw != "" {
		currencies = strings.Split(strings.ToUpper(raw), ",")
	}

	view, err := h.marketService.Dashboard(c.Request.Context(), source, currencies)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, view)
}

// derivedRate godoc
// @Summary Ledger-derived USD/LBP rate
// @Description Aggregates the trailing 72h of USD->LBP conversions into a volume-weighted rate.
// @Tags rates
// @Produce json
// @Success 200 {object} domain.DerivedRate
// @Failure 404 {object} ErrorResponse "No conversions in the window"
// @Router /rates/derived [get]
func (h *rateHandler) derivedRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rate, err := h.conversionService.DeriveRate(c.Request.Context(), services.DeriveWindow)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to derive rate")
		return
	}

	c.JSON(http.StatusOK, rate)
}

// goldSpot godoc
// @Summary Gold spot price
// @Description Returns the latest gold futures closing price in USD.
// @Tags rates
// @Produce json
// @Success 200 {object} domain.GoldQuote
// @Failure 502 {object} ErrorResponse
// @Router /rates/gold [get]
func (h *rateHandler) goldSpot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	quote, err := h.marketService.GoldSpot(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch gold price")
		return
	}

	c.JSON(http.StatusOK, quote)
}

// goldHistory godoc
// @Summary Gold price history
// @Description Returns daily gold closing prices for the trailing days.
// @Tags rates
// @Produce json
// @Param days query int false "Trailing days" default(7)
// @Success 200 {object} domain.GoldHistory
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /rates/gold/history [get]
func (h *rateHandler) goldHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	history, err := h.marketService.GoldHistory(c.Request.Context(), queryInt(c, "days", 7))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch gold history")
		return
	}

	c.JSON(http.StatusOK, history)
}

// historicalRates godoc
// @Summary Historical currency rates
// @Description Returns the trailing days of source->currency quotes as a dated series.
// @Tags rates
// @Produce json
// @Param currency path string true "Target currency"
// @Param source query string false "Source currency" default(USD)
// @Param days query int false "Trailing days" default(7)
// @Success 200 {array} domain.RatePoint
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /rates/historical/{currency} [get]
func (h *rateHandler) historicalRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	source := strings.ToUpper(c.DefaultQuery("source", "USD"))
	currency := strings.ToUpper(c.Param("currency"))

	points, err := h.marketService.HistoricalRates(c.Request.Context(), source, currency, queryInt(c, "days", 7))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch historical rates")
		return
	}

	c.JSON(http.StatusOK, points)
}

// forecast godoc
// @Summary Rate forecast
// @Description Fits a linear trend to the trailing history and projects it forward, with a BUY/SELL/HOLD suggestion.
// @Tags rates
// @Produce json
// @Param source query string false "Source currency" default(USD)
// @Param currency query string false "Target currency" default(EUR)
// @Param history_days query int false "History window" default(30)
// @Param forecast_days query int false "Days to project" default(7)
// @Success 200 {object} domain.RateForecast
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /rates/forecast [get]
func (h *rateHandler) forecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	source := strings.ToUpper(c.DefaultQuery("source", "USD"))
	currency := strings.ToUpper(c.DefaultQuery("currency", "EUR"))

	forecast, err := h.forecastService.Forecast(c.Request.Context(), source, currency,
		queryInt(c, "history_days", 30), queryInt(c, "forecast_days", 7))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute forecast")
		return
	}

	c.JSON(http.StatusOK, forecast)
}

// margin godoc
// @Summary Margin quote
// @Description Returns the official rate and the platform rate with the percent markup applied.
// @Tags rates
// @Produce json
// @Param currency path string true "Target currency"
// @Param source query string false "Source currency" default(USD)
// @Param percent query number false "Markup percent (platform default when omitted)"
// @Success 200 {object} domain.MarginInfo
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/margin/{currency} [get]
func (h *rateHandler) margin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	source := strings.ToUpper(c.DefaultQuery("source", "USD"))
	currency := strings.ToUpper(c.Param("currency"))

	percent := decimal.Zero
	if raw := c.Query("percent"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid percent value"})
			return
		}
		percent = parsed
	}

	info, err := h.marketService.Margin(c.Request.Context(), source, currency, percent)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute margin quote")
		return
	}

	c.JSON(http.StatusOK, info)
}
