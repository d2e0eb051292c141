package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// CreateTriggerRequest defines the payload for creating a rate trigger.
// Operator accepts both symbolic (">=") and canonical ("GTE") spellings;
// it is parsed against the closed operator set in the service layer.
type CreateTriggerRequest struct {
	BaseCurrency   string          `json:"base" binding:"required,currency"`
	TargetCurrency string          `json:"target" binding:"required,currency"`
	Operator       string          `json:"operator" binding:"required"`
	Threshold      decimal.Decimal `json:"threshold" binding:"required"`
}

// TriggerResponse defines the structure for API responses containing trigger details.
type TriggerResponse struct {
	TriggerID      string          `json:"triggerID"`
	BaseCurrency   string          `json:"base"`
	TargetCurrency string          `json:"target"`
	Operator       string          `json:"operator"`
	Threshold      decimal.Decimal `json:"threshold"`
	Triggered      bool            `json:"triggered"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToTriggerResponse converts a domain.RateTrigger to TriggerResponse DTO.
func ToTriggerResponse(t *domain.RateTrigger) TriggerResponse {
	return TriggerResponse{
		TriggerID:      t.TriggerID,
		BaseCurrency:   t.BaseCurrency,
		TargetCurrency: t.TargetCurrency,
		Operator:       t.Operator.Symbol(),
		Threshold:      t.Threshold,
		Triggered:      t.Triggered,
		CreatedAt:      t.CreatedAt,
	}
}
