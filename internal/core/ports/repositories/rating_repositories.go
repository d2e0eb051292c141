package repositories

import (
	"context"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// RatingRepositoryFacade defines persistence for the append-only rating ledger.
type RatingRepositoryFacade interface {
	SaveRating(ctx context.Context, rating domain.Rating) error
	FindRatingsByRateeID(ctx context.Context, rateeID string) ([]domain.Rating, error)
}
