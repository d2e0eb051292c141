package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// EscrowResponse defines the structure for API responses containing escrow details.
type EscrowResponse struct {
	EscrowID       string          `json:"escrowID"`
	OrderID        string          `json:"orderID"`
	BuyerID        string          `json:"buyerID"`
	SellerID       string          `json:"sellerID"`
	Amount         decimal.Decimal `json:"amount"`
	Price          decimal.Decimal `json:"price"`
	TargetCurrency string          `json:"targetCurrency"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToEscrowResponse converts a domain.Escrow to EscrowResponse DTO.
func ToEscrowResponse(e *domain.Escrow) EscrowResponse {
	return EscrowResponse{
		EscrowID:       e.EscrowID,
		OrderID:        e.OrderID,
		BuyerID:        e.BuyerID,
		SellerID:       e.SellerID,
		Amount:         e.Amount,
		Price:          e.Price,
		TargetCurrency: e.TargetCurrency,
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
		LastUpdatedAt:  e.LastUpdatedAt,
	}
}
