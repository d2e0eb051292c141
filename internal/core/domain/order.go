package domain

import "github.com/shopspring/decimal"

// OrderSide is the direction of a peer exchange order.
type OrderSide string

const (
	Buy  OrderSide = "BUY"
	Sell OrderSide = "SELL"
)

// OrderStatus is the lifecycle state of an order. OPEN is the only
// non-terminal state; the transition out of it happens exactly once.
type OrderStatus string

const (
	OrderOpen      OrderStatus = "OPEN"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Order is a standing offer to exchange Amount of BaseCurrency for
// TargetCurrency at Price. An order completes at acceptance time: the match
// is final once a counterparty commits funds, even though settlement of the
// escrow is still pending.
type Order struct {
	OrderID        string          `json:"orderID"` // Primary Key (UUID)
	OwnerID        string          `json:"ownerID"`
	Side           OrderSide       `json:"side"`
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Amount         decimal.Decimal `json:"amount"`
	Price          decimal.Decimal `json:"price"`
	Status         OrderStatus     `json:"status"`
	AuditFields
}
