package models

import "github.com/shopspring/decimal"

// WalletBalance represents a row in the wallet_balances table.
// The table carries UNIQUE (user_id, currency) and CHECK (balance >= 0);
// balances are only ever mutated through the wallet repository.
type WalletBalance struct {
	WalletID string          `db:"wallet_id"`
	UserID   string          `db:"user_id"`
	Currency string          `db:"currency"`
	Balance  decimal.Decimal `db:"balance"`
	AuditFields
}
