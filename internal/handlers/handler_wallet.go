package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

// walletHandler handles HTTP requests related to wallets.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws}
}

// registerWalletRoutes registers routes related to wallets.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	wallet := rg.Group("/wallet")
	{
		wallet.GET("", h.listBalances)
		wallet.GET("/:currency", h.getBalance)
		wallet.POST("/deposit", h.deposit)
	}
}

// listBalances godoc
// @Summary List wallet balances
// @Description Returns the caller's balance in every currency they hold.
// @Tags wallet
// @Produce json
// @Success 200 {object} dto.ListWalletResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet [get]
func (h *walletHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balances, err := h.walletService.ListBalances(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWalletResponse(balances))
}

// getBalance godoc
// @Summary Get one wallet balance
// @Description Returns the caller's balance in the given currency. A currency never held reads as zero.
// @Tags wallet
// @Produce json
// @Param currency path string true "ISO 4217 currency code"
// @Success 200 {object} dto.WalletBalanceResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/{currency} [get]
func (h *walletHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	currency := strings.ToUpper(c.Param("currency"))
	balance, err := h.walletService.GetBalance(c.Request.Context(), userID, currency)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletBalanceResponse(balance))
}

// deposit godoc
// @Summary Deposit into wallet
// @Description Credits the caller's wallet in the given currency, creating the balance on first use.
// @Tags wallet
// @Accept json
// @Produce json
// @Param deposit body dto.DepositRequest true "Deposit details"
// @Success 200 {object} dto.WalletBalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid currency or non-positive amount"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/deposit [post]
func (h *walletHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	balance, err := h.walletService.Deposit(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to deposit")
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletBalanceResponse(balance))
}
