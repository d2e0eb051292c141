package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// CreateOrderRequest defines the payload for creating an exchange order.
// Amount/price positivity and base != target are enforced in the service layer.
type CreateOrderRequest struct {
	Side           string          `json:"side" binding:"required,oneof=BUY SELL"`
	BaseCurrency   string          `json:"base" binding:"required,currency"`
	TargetCurrency string          `json:"target" binding:"required,currency"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Price          decimal.Decimal `json:"price" binding:"required"`
}

// OrderResponse defines the structure for API responses containing order details.
type OrderResponse struct {
	OrderID        string          `json:"orderID"`
	OwnerID        string          `json:"ownerID"`
	Side           string          `json:"side"`
	BaseCurrency   string          `json:"base"`
	TargetCurrency string          `json:"target"`
	Amount         decimal.Decimal `json:"amount"`
	Price          decimal.Decimal `json:"price"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ListOrdersResponse wraps the open order book.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:        o.OrderID,
		OwnerID:        o.OwnerID,
		Side:           string(o.Side),
		BaseCurrency:   o.BaseCurrency,
		TargetCurrency: o.TargetCurrency,
		Amount:         o.Amount,
		Price:          o.Price,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt,
	}
}

// ToListOrdersResponse converts a slice of orders.
func ToListOrdersResponse(os []domain.Order) ListOrdersResponse {
	orders := make([]OrderResponse, len(os))
	for i := range os {
		orders[i] = ToOrderResponse(&os[i])
	}
	return ListOrdersResponse{Orders: orders}
}
