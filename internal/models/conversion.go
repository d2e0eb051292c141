package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversion represents a row in the conversions table. Append-only.
type Conversion struct {
	ConversionID string          `db:"conversion_id"`
	UserID       string          `db:"user_id"`
	USDAmount    decimal.Decimal `db:"usd_amount"`
	LBPAmount    decimal.Decimal `db:"lbp_amount"`
	USDToLBP     bool            `db:"usd_to_lbp"`
	RecordedAt   time.Time       `db:"recorded_at"`
}
