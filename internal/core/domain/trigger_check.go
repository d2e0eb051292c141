package domain

import "github.com/shopspring/decimal"

// TriggerAlert is a trigger whose condition held against the live rate.
type TriggerAlert struct {
	Trigger  RateTrigger     `json:"trigger"`
	LiveRate decimal.Decimal `json:"liveRate"`
}

// TriggerFailure records a trigger that could not be evaluated, typically
// because the market-data provider failed or returned no quote for the pair.
// Failures are reported alongside successes, never dropped.
type TriggerFailure struct {
	TriggerID string `json:"triggerID"`
	Reason    string `json:"reason"`
}

// TriggerCheckOutcome is the full result of one evaluation pass over the
// untriggered triggers.
type TriggerCheckOutcome struct {
	Alerts   []TriggerAlert   `json:"alerts"`
	Checked  int              `json:"checked"`
	Failures []TriggerFailure `json:"failures"`
}
