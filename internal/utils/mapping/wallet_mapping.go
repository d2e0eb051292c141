package mapping

import (
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
)

// ToDomainWalletBalance converts a models.WalletBalance to domain.WalletBalance.
func ToDomainWalletBalance(m models.WalletBalance) domain.WalletBalance {
	return domain.WalletBalance{
		WalletID:    m.WalletID,
		UserID:      m.UserID,
		Currency:    m.Currency,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWalletBalances converts a slice of wallet rows.
func ToDomainWalletBalances(ms []models.WalletBalance) []domain.WalletBalance {
	out := make([]domain.WalletBalance, len(ms))
	for i, m := range ms {
		out[i] = ToDomainWalletBalance(m)
	}
	return out
}
