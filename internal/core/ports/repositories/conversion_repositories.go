package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// ConversionRepositoryFacade defines persistence for the append-only
// conversion ledger and the window aggregate the derived rate is built from.
type ConversionRepositoryFacade interface {
	SaveConversion(ctx context.Context, conversion domain.Conversion) error
	FindConversionsByUserID(ctx context.Context, userID string) ([]domain.Conversion, error)
	// FindLatestConversionByUserID returns ErrNotFound when the user has none.
	FindLatestConversionByUserID(ctx context.Context, userID string) (*domain.Conversion, error)
	// SumUSDToLBPSince totals usd and lbp amounts of USD->LBP records with
	// recorded_at >= since, together with the record count.
	SumUSDToLBPSince(ctx context.Context, since time.Time) (usdTotal, lbpTotal decimal.Decimal, count int64, err error)
}
