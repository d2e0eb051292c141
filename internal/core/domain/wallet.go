package domain

import "github.com/shopspring/decimal"

// WalletBalance is the stored amount a user holds in one currency.
// There is at most one row per (user, currency) pair and the balance is never
// negative; it is mutated only through the wallet repository's credit/debit
// operations.
type WalletBalance struct {
	WalletID string          `json:"walletID"` // Primary Key (UUID)
	UserID   string          `json:"userID"`
	Currency string          `json:"currency"` // ISO 4217 code
	Balance  decimal.Decimal `json:"balance"`
	AuditFields
}
