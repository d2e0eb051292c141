package domain

import "github.com/shopspring/decimal"

// EscrowStatus is the lifecycle state of an escrow. PENDING is the only
// non-terminal state.
type EscrowStatus string

const (
	EscrowPending   EscrowStatus = "PENDING"
	EscrowReleased  EscrowStatus = "RELEASED"
	EscrowCancelled EscrowStatus = "CANCELLED"
)

// Escrow holds the buyer's committed funds between order acceptance and final
// settlement. Exactly one escrow exists per accepted order. Only the named
// seller may release it, and only while PENDING; release credits the buyer
// Amount*Price in TargetCurrency.
type Escrow struct {
	EscrowID       string          `json:"escrowID"` // Primary Key (UUID)
	OrderID        string          `json:"orderID"`
	BuyerID        string          `json:"buyerID"`  // The acceptor whose base-currency funds are held
	SellerID       string          `json:"sellerID"` // The order owner, sole authority for release
	Amount         decimal.Decimal `json:"amount"`
	Price          decimal.Decimal `json:"price"`
	TargetCurrency string          `json:"targetCurrency"`
	Status         EscrowStatus    `json:"status"`
	AuditFields
}
