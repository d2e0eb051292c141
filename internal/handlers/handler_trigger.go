package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

// triggerHandler handles HTTP requests related to rate triggers.
type triggerHandler struct {
	triggerService portssvc.TriggerSvcFacade
}

func newTriggerHandler(ts portssvc.TriggerSvcFacade) *triggerHandler {
	return &triggerHandler{triggerService: ts}
}

// registerTriggerRoutes registers the authenticated trigger routes.
func registerTriggerRoutes(rg *gin.RouterGroup, triggerService portssvc.TriggerSvcFacade) {
	h := newTriggerHandler(triggerService)
	rg.POST("/triggers", h.createTrigger)
}

// registerPublicTriggerRoutes registers the evaluation pass, callable by a
// scheduler without credentials.
func registerPublicTriggerRoutes(r *gin.Engine, triggerService portssvc.TriggerSvcFacade) {
	h := newTriggerHandler(triggerService)
	r.POST("/triggers/check", h.checkTriggers)
}

// createTrigger godoc
// @Summary Create a rate trigger
// @Description Creates a one-shot alert that fires when the live pair rate satisfies the comparison. Operator is one of GT, GTE, LT, LTE, EQ or the symbolic spellings.
// @Tags triggers
// @Accept json
// @Produce json
// @Param trigger body dto.CreateTriggerRequest true "Trigger details"
// @Success 201 {object} dto.TriggerResponse
// @Failure 400 {object} ErrorResponse "Unknown operator or non-positive threshold"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /triggers [post]
func (h *triggerHandler) createTrigger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	trigger, err := h.triggerService.CreateTrigger(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create trigger")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTriggerResponse(trigger))
}

// checkTriggers godoc
// @Summary Evaluate rate triggers
// @Description Evaluates every untriggered trigger against live rates. Fired alerts and per-trigger failures are both reported.
// @Tags triggers
// @Produce json
// @Success 200 {object} domain.TriggerCheckOutcome
// @Failure 500 {object} ErrorResponse
// @Router /triggers/check [post]
func (h *triggerHandler) checkTriggers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	outcome, err := h.triggerService.CheckTriggers(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to check triggers")
		return
	}

	c.JSON(http.StatusOK, outcome)
}
