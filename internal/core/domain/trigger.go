package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TriggerOperator is the closed set of comparisons a rate trigger may use.
// Comparisons are dispatched through Compare; arbitrary expressions are not
// representable.
type TriggerOperator string

const (
	OpGreaterThan TriggerOperator = "GT"
	OpGreaterOrEq TriggerOperator = "GTE"
	OpLessThan    TriggerOperator = "LT"
	OpLessOrEq    TriggerOperator = "LTE"
	OpEqual       TriggerOperator = "EQ"
)

// ParseTriggerOperator maps an operator spelling to its enum value. Both the
// symbolic forms (">", ">=", ...) and the canonical names are accepted.
func ParseTriggerOperator(s string) (TriggerOperator, error) {
	switch s {
	case ">", string(OpGreaterThan):
		return OpGreaterThan, nil
	case ">=", string(OpGreaterOrEq):
		return OpGreaterOrEq, nil
	case "<", string(OpLessThan):
		return OpLessThan, nil
	case "<=", string(OpLessOrEq):
		return OpLessOrEq, nil
	case "==", string(OpEqual):
		return OpEqual, nil
	default:
		return "", fmt.Errorf("unknown trigger operator %q", s)
	}
}

// Symbol returns the symbolic spelling used in API responses.
func (op TriggerOperator) Symbol() string {
	switch op {
	case OpGreaterThan:
		return ">"
	case OpGreaterOrEq:
		return ">="
	case OpLessThan:
		return "<"
	case OpLessOrEq:
		return "<="
	case OpEqual:
		return "=="
	}
	return string(op)
}

// Compare evaluates `rate op threshold`. Unknown operators evaluate to false;
// they cannot be constructed through ParseTriggerOperator.
func (op TriggerOperator) Compare(rate, threshold decimal.Decimal) bool {
	switch op {
	case OpGreaterThan:
		return rate.GreaterThan(threshold)
	case OpGreaterOrEq:
		return rate.GreaterThanOrEqual(threshold)
	case OpLessThan:
		return rate.LessThan(threshold)
	case OpLessOrEq:
		return rate.LessThanOrEqual(threshold)
	case OpEqual:
		return rate.Equal(threshold)
	}
	return false
}

// RateTrigger is a one-shot alert on a live currency pair rate. Once the
// condition holds during a check it is marked triggered and never fires again.
type RateTrigger struct {
	TriggerID      string          `json:"triggerID"` // Primary Key (UUID)
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Operator       TriggerOperator `json:"operator"`
	Threshold      decimal.Decimal `json:"threshold"`
	Triggered      bool            `json:"triggered"`
	CreatedAt      time.Time       `json:"createdAt"`
}
