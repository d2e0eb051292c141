package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversion is one USD/LBP exchange event in the append-only conversion
// ledger. USDToLBP records the direction; the trailing window of USDToLBP
// conversions is what the derived market rate is computed from.
type Conversion struct {
	ConversionID string          `json:"conversionID"` // Primary Key (UUID)
	UserID       string          `json:"userID"`
	USDAmount    decimal.Decimal `json:"usdAmount"`
	LBPAmount    decimal.Decimal `json:"lbpAmount"`
	USDToLBP     bool            `json:"usdToLbp"`
	RecordedAt   time.Time       `json:"recordedAt"` // Server-assigned, never client-supplied
}

// DerivedRate is the market rate signal aggregated from the conversion ledger.
type DerivedRate struct {
	USDToLBP decimal.Decimal `json:"usdToLbp"`
	LBPToUSD decimal.Decimal `json:"lbpToUsd"`
}
