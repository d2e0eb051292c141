package dto

import (
	"github.com/shopspring/decimal"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// DepositRequest defines the payload for a wallet deposit.
// Amount positivity is enforced in the service layer.
type DepositRequest struct {
	Currency string          `json:"currency" binding:"required,currency"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// WalletBalanceResponse defines one (currency, balance) pair in API responses.
type WalletBalanceResponse struct {
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// ListWalletResponse wraps a user's full wallet.
type ListWalletResponse struct {
	Balances []WalletBalanceResponse `json:"balances"`
}

// ToWalletBalanceResponse converts a domain.WalletBalance to its DTO.
func ToWalletBalanceResponse(w *domain.WalletBalance) WalletBalanceResponse {
	return WalletBalanceResponse{
		Currency: w.Currency,
		Balance:  w.Balance,
	}
}

// ToListWalletResponse converts a slice of wallet balances.
func ToListWalletResponse(ws []domain.WalletBalance) ListWalletResponse {
	balances := make([]WalletBalanceResponse, len(ws))
	for i := range ws {
		balances[i] = ToWalletBalanceResponse(&ws[i])
	}
	return ListWalletResponse{Balances: balances}
}
