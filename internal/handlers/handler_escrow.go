package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

// escrowHandler handles HTTP requests related to escrows.
type escrowHandler struct {
	escrowService portssvc.EscrowSvcFacade
}

func newEscrowHandler(es portssvc.EscrowSvcFacade) *escrowHandler {
	return &escrowHandler{escrowService: es}
}

// registerEscrowRoutes registers routes related to escrows.
func registerEscrowRoutes(rg *gin.RouterGroup, escrowService portssvc.EscrowSvcFacade) {
	h := newEscrowHandler(escrowService)

	escrows := rg.Group("/escrows")
	{
		escrows.GET("/:id", h.getEscrow)
		escrows.POST("/:id/release", h.releaseEscrow)
	}
}

// getEscrow godoc
// @Summary Get an escrow
// @Description Retrieves escrow details by ID.
// @Tags escrows
// @Produce json
// @Param id path string true "Escrow ID"
// @Success 200 {object} dto.EscrowResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Escrow not found"
// @Security BearerAuth
// @Router /escrows/{id} [get]
func (h *escrowHandler) getEscrow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	escrow, err := h.escrowService.GetEscrowByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get escrow")
		return
	}

	c.JSON(http.StatusOK, dto.ToEscrowResponse(escrow))
}

// releaseEscrow godoc
// @Summary Release an escrow
// @Description Settles the trade: credits the buyer amount*price in the target currency. Only the seller may release, and only while PENDING.
// @Tags escrows
// @Produce json
// @Param id path string true "Escrow ID"
// @Success 200 {object} dto.EscrowResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Caller is not the seller"
// @Failure 404 {object} ErrorResponse "Escrow not found"
// @Failure 409 {object} ErrorResponse "Escrow already finalized"
// @Security BearerAuth
// @Router /escrows/{id}/release [post]
func (h *escrowHandler) releaseEscrow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	escrow, err := h.escrowService.ReleaseEscrow(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to release escrow")
		return
	}

	c.JSON(http.StatusOK, dto.ToEscrowResponse(escrow))
}
