package mapping

import (
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
)

// ToModelEscrow converts a domain.Escrow to models.Escrow.
func ToModelEscrow(d domain.Escrow) models.Escrow {
	return models.Escrow{
		EscrowID:       d.EscrowID,
		OrderID:        d.OrderID,
		BuyerID:        d.BuyerID,
		SellerID:       d.SellerID,
		Amount:         d.Amount,
		Price:          d.Price,
		TargetCurrency: d.TargetCurrency,
		Status:         models.EscrowStatus(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEscrow converts a models.Escrow to domain.Escrow.
func ToDomainEscrow(m models.Escrow) domain.Escrow {
	return domain.Escrow{
		EscrowID:       m.EscrowID,
		OrderID:        m.OrderID,
		BuyerID:        m.BuyerID,
		SellerID:       m.SellerID,
		Amount:         m.Amount,
		Price:          m.Price,
		TargetCurrency: m.TargetCurrency,
		Status:         domain.EscrowStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
