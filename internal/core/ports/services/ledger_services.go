package services

import (
	"context"
	"time"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
)

// RatingSvcFacade defines operations on the append-only rating ledger.
type RatingSvcFacade interface {
	RecordRating(ctx context.Context, raterID string, req dto.CreateRatingRequest) (*domain.Rating, error)
	ListRatingsForUser(ctx context.Context, rateeID string) ([]domain.Rating, error)
}

// ConversionSvcFacade defines operations on the conversion ledger and the
// derived market rate built from it.
type ConversionSvcFacade interface {
	RecordConversion(ctx context.Context, userID string, req dto.CreateConversionRequest) (*domain.Conversion, error)
	ListUserConversions(ctx context.Context, userID string) ([]domain.Conversion, error)
	LatestConversion(ctx context.Context, userID string) (*domain.Conversion, error)
	// DeriveRate aggregates the trailing window of USD->LBP conversions into
	// a rate signal. Returns ErrNoData when the window is empty.
	DeriveRate(ctx context.Context, window time.Duration) (*domain.DerivedRate, error)
}
