package mapping

import (
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
)

// ToModelConversion converts a domain.Conversion to models.Conversion.
func ToModelConversion(d domain.Conversion) models.Conversion {
	return models.Conversion{
		ConversionID: d.ConversionID,
		UserID:       d.UserID,
		USDAmount:    d.USDAmount,
		LBPAmount:    d.LBPAmount,
		USDToLBP:     d.USDToLBP,
		RecordedAt:   d.RecordedAt,
	}
}

// ToDomainConversion converts a models.Conversion to domain.Conversion.
func ToDomainConversion(m models.Conversion) domain.Conversion {
	return domain.Conversion{
		ConversionID: m.ConversionID,
		UserID:       m.UserID,
		USDAmount:    m.USDAmount,
		LBPAmount:    m.LBPAmount,
		USDToLBP:     m.USDToLBP,
		RecordedAt:   m.RecordedAt,
	}
}

// ToDomainConversions converts a slice of conversion rows.
func ToDomainConversions(ms []models.Conversion) []domain.Conversion {
	out := make([]domain.Conversion, len(ms))
	for i, m := range ms {
		out[i] = ToDomainConversion(m)
	}
	return out
}
