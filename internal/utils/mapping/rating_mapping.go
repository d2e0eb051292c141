package mapping

import (
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
)

// ToModelRating converts a domain.Rating to models.Rating.
func ToModelRating(d domain.Rating) models.Rating {
	return models.Rating{
		RatingID:  d.RatingID,
		RaterID:   d.RaterID,
		RateeID:   d.RateeID,
		Score:     d.Score,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainRating converts a models.Rating to domain.Rating.
func ToDomainRating(m models.Rating) domain.Rating {
	return domain.Rating{
		RatingID:  m.RatingID,
		RaterID:   m.RaterID,
		RateeID:   m.RateeID,
		Score:     m.Score,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}
