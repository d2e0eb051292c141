package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
	"github.com/zein-l/Currency-exchange-backend/internal/platform/config"
)

// conversionHandler handles HTTP requests related to the conversion ledger.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{conversionService: cs}
}

// registerConversionRoutes registers the authenticated conversion ledger
// routes. Writes and reads carry separate per-IP rate limits.
func registerConversionRoutes(rg *gin.RouterGroup, cfg *config.Config, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	writeRate := limiter.Rate{Period: time.Minute, Limit: cfg.ConversionWriteLimitPerMin}
	readRate := limiter.Rate{Period: time.Minute, Limit: cfg.ConversionReadLimitPerMin}
	writeLimit := middleware.RateLimit(limiter.New(memory.NewStore(), writeRate))
	readLimit := middleware.RateLimit(limiter.New(memory.NewStore(), readRate))

	conversions := rg.Group("/conversions")
	{
		conversions.POST("", writeLimit, h.createConversion)
		conversions.GET("", readLimit, h.listConversions)
		conversions.GET("/latest", readLimit, h.latestConversion)
	}
}

// createConversion godoc
// @Summary Record a conversion
// @Description Appends a USD/LBP exchange event to the caller's conversion ledger.
// @Tags conversions
// @Accept json
// @Produce json
// @Param conversion body dto.CreateConversionRequest true "Conversion details"
// @Success 201 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse "Non-positive amounts"
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /conversions [post]
func (h *conversionHandler) createConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	conversion, err := h.conversionService.RecordConversion(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record conversion")
		return
	}

	c.JSON(http.StatusCreated, dto.ToConversionResponse(conversion))
}

// listConversions godoc
// @Summary List own conversions
// @Description Returns the caller's conversion history, newest first.
// @Tags conversions
// @Produce json
// @Success 200 {object} dto.ListConversionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /conversions [get]
func (h *conversionHandler) listConversions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	conversions, err := h.conversionService.ListUserConversions(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list conversions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListConversionsResponse(conversions))
}

// latestConversion godoc
// @Summary Latest own conversion
// @Description Returns the caller's most recent conversion.
// @Tags conversions
// @Produce json
// @Success 200 {object} dto.ConversionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No conversions recorded"
// @Security BearerAuth
// @Router /conversions/latest [get]
func (h *conversionHandler) latestConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	conversion, err := h.conversionService.LatestConversion(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get latest conversion")
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}
