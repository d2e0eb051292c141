package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

// orderHandler handles HTTP requests related to exchange orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerPublicOrderRoutes registers the open order book, readable without
// authentication.
func registerPublicOrderRoutes(r *gin.Engine, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)
	r.GET("/orders", h.listOpenOrders)
}

// registerOrderRoutes registers the authenticated order operations.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.POST("/:id/accept", h.acceptOrder)
		orders.POST("/:id/cancel", h.cancelOrder)
	}
}

// listOpenOrders godoc
// @Summary List open orders
// @Description Returns every OPEN order, oldest first.
// @Tags orders
// @Produce json
// @Success 200 {object} dto.ListOrdersResponse
// @Router /orders [get]
func (h *orderHandler) listOpenOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orders, err := h.orderService.ListOpenOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}

// createOrder godoc
// @Summary Create an order
// @Description Places a standing offer to exchange an amount of the base currency for the target currency at the given price.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Invalid side, currency, amount or price"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// acceptOrder godoc
// @Summary Accept an order
// @Description Accepts an OPEN order: debits the caller's base-currency wallet and creates the PENDING escrow. Self-trades are rejected.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.EscrowResponse
// @Failure 400 {object} ErrorResponse "Insufficient funds or missing wallet"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Order no longer open, or own order"
// @Security BearerAuth
// @Router /orders/{id}/accept [post]
func (h *orderHandler) acceptOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	escrow, err := h.orderService.AcceptOrder(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to accept order")
		return
	}

	c.JSON(http.StatusOK, dto.ToEscrowResponse(escrow))
}

// cancelOrder godoc
// @Summary Cancel an order
// @Description Cancels the caller's own OPEN order.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 204 "Cancelled"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Order no longer open"
// @Security BearerAuth
// @Router /orders/{id}/cancel [post]
func (h *orderHandler) cancelOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.orderService.CancelOrder(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to cancel order")
		return
	}

	c.Status(http.StatusNoContent)
}
