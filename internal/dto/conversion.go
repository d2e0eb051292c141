package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// CreateConversionRequest defines the payload for recording a USD/LBP
// conversion. USDToLBP is a pointer so that an explicit `false` survives
// binding. Amount positivity is enforced in the service layer.
type CreateConversionRequest struct {
	USDAmount decimal.Decimal `json:"usdAmount" binding:"required"`
	LBPAmount decimal.Decimal `json:"lbpAmount" binding:"required"`
	USDToLBP  *bool           `json:"usdToLbp" binding:"required"`
}

// ConversionResponse defines the structure for API responses containing
// conversion details.
type ConversionResponse struct {
	ConversionID string          `json:"conversionID"`
	UserID       string          `json:"userID"`
	USDAmount    decimal.Decimal `json:"usdAmount"`
	LBPAmount    decimal.Decimal `json:"lbpAmount"`
	USDToLBP     bool            `json:"usdToLbp"`
	RecordedAt   time.Time       `json:"recordedAt"`
}

// ListConversionsResponse wraps a user's conversion history.
type ListConversionsResponse struct {
	Conversions []ConversionResponse `json:"conversions"`
}

// ToConversionResponse converts a domain.Conversion to its DTO.
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		ConversionID: c.ConversionID,
		UserID:       c.UserID,
		USDAmount:    c.USDAmount,
		LBPAmount:    c.LBPAmount,
		USDToLBP:     c.USDToLBP,
		RecordedAt:   c.RecordedAt,
	}
}

// ToListConversionsResponse converts a slice of conversions.
func ToListConversionsResponse(cs []domain.Conversion) ListConversionsResponse {
	conversions := make([]ConversionResponse, len(cs))
	for i := range cs {
		conversions[i] = ToConversionResponse(&cs[i])
	}
	return ListConversionsResponse{Conversions: conversions}
}
