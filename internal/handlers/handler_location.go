package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

// locationHandler handles locale detection requests.
type locationHandler struct {
	locationService portssvc.LocationSvcFacade
}

// registerLocationRoutes registers the public locale detection route.
func registerLocationRoutes(r *gin.Engine, locationService portssvc.LocationSvcFacade) {
	h := &locationHandler{locationService: locationService}
	r.GET("/detect-currency", h.detectCurrency)
}

// detectCurrency godoc
// @Summary Detect client currency
// @Description Resolves the client IP to a country, its default currency and travel currency suggestions.
// @Tags location
// @Produce json
// @Success 200 {object} domain.CurrencyLocale
// @Router /detect-currency [get]
func (h *locationHandler) detectCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	locale, err := h.locationService.DetectCurrency(c.Request.Context(), c.ClientIP())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to detect currency")
		return
	}

	c.JSON(http.StatusOK, locale)
}
