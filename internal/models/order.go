package models

import "github.com/shopspring/decimal"

// OrderStatus mirrors the order_status enum column.
type OrderStatus string

const (
	OrderOpen      OrderStatus = "OPEN"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Order represents a row in the orders table.
type Order struct {
	OrderID        string          `db:"order_id"`
	OwnerID        string          `db:"owner_id"`
	Side           string          `db:"side"` // BUY or SELL
	BaseCurrency   string          `db:"base_currency"`
	TargetCurrency string          `db:"target_currency"`
	Amount         decimal.Decimal `db:"amount"`
	Price          decimal.Decimal `db:"price"`
	Status         OrderStatus     `db:"status"`
	AuditFields
}
