package mapping

import (
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
)

// ToModelOrder converts a domain.Order to models.Order.
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:        d.OrderID,
		OwnerID:        d.OwnerID,
		Side:           string(d.Side),
		BaseCurrency:   d.BaseCurrency,
		TargetCurrency: d.TargetCurrency,
		Amount:         d.Amount,
		Price:          d.Price,
		Status:         models.OrderStatus(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder converts a models.Order to domain.Order.
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:        m.OrderID,
		OwnerID:        m.OwnerID,
		Side:           domain.OrderSide(m.Side),
		BaseCurrency:   m.BaseCurrency,
		TargetCurrency: m.TargetCurrency,
		Amount:         m.Amount,
		Price:          m.Price,
		Status:         domain.OrderStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrders converts a slice of order rows.
func ToDomainOrders(ms []models.Order) []domain.Order {
	out := make([]domain.Order, len(ms))
	for i, m := range ms {
		out[i] = ToDomainOrder(m)
	}
	return out
}
