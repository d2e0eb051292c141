package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTrigger represents a row in the rate_triggers table.
type RateTrigger struct {
	TriggerID      string          `db:"trigger_id"`
	BaseCurrency   string          `db:"base_currency"`
	TargetCurrency string          `db:"target_currency"`
	Operator       string          `db:"operator"` // GT, GTE, LT, LTE, EQ
	Threshold      decimal.Decimal `db:"threshold"`
	Triggered      bool            `db:"triggered"`
	CreatedAt      time.Time       `db:"created_at"`
}
