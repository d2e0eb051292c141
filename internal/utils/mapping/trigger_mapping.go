package mapping

import (
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
)

// ToModelRateTrigger converts a domain.RateTrigger to models.RateTrigger.
func ToModelRateTrigger(d domain.RateTrigger) models.RateTrigger {
	return models.RateTrigger{
		TriggerID:      d.TriggerID,
		BaseCurrency:   d.BaseCurrency,
		TargetCurrency: d.TargetCurrency,
		Operator:       string(d.Operator),
		Threshold:      d.Threshold,
		Triggered:      d.Triggered,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainRateTrigger converts a models.RateTrigger to domain.RateTrigger.
func ToDomainRateTrigger(m models.RateTrigger) domain.RateTrigger {
	return domain.RateTrigger{
		TriggerID:      m.TriggerID,
		BaseCurrency:   m.BaseCurrency,
		TargetCurrency: m.TargetCurrency,
		Operator:       domain.TriggerOperator(m.Operator),
		Threshold:      m.Threshold,
		Triggered:      m.Triggered,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainRateTriggers converts a slice of trigger rows.
func ToDomainRateTriggers(ms []models.RateTrigger) []domain.RateTrigger {
	out := make([]domain.RateTrigger, len(ms))
	for i, m := range ms {
		out[i] = ToDomainRateTrigger(m)
	}
	return out
}
