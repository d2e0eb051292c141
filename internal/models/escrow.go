package models

import "github.com/shopspring/decimal"

// EscrowStatus mirrors the escrow_status enum column.
type EscrowStatus string

const (
	EscrowPending   EscrowStatus = "PENDING"
	EscrowReleased  EscrowStatus = "RELEASED"
	EscrowCancelled EscrowStatus = "CANCELLED"
)

// Escrow represents a row in the escrows table.
// UNIQUE (order_id) enforces the one-escrow-per-order invariant at the
// storage layer.
type Escrow struct {
	EscrowID       string          `db:"escrow_id"`
	OrderID        string          `db:"order_id"`
	BuyerID        string          `db:"buyer_id"`
	SellerID       string          `db:"seller_id"`
	Amount         decimal.Decimal `db:"amount"`
	Price          decimal.Decimal `db:"price"`
	TargetCurrency string          `db:"target_currency"`
	Status         EscrowStatus    `db:"status"`
	AuditFields
}
