package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
	"github.com/zein-l/Currency-exchange-backend/internal/utils/mapping"
)

// PgxConversionRepository implements ConversionRepositoryFacade on PostgreSQL.
type PgxConversionRepository struct {
	BaseRepository
}

// newPgxConversionRepository creates a new repository for conversion data.
func newPgxConversionRepository(pool *pgxpool.Pool) portsrepo.ConversionRepositoryFacade {
	return &PgxConversionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ConversionRepositoryFacade = (*PgxConversionRepository)(nil)

const conversionColumns = `conversion_id, user_id, usd_amount, lbp_amount, usd_to_lbp, recorded_at`

// SaveConversion appends a conversion to the ledger.
func (r *PgxConversionRepository) SaveConversion(ctx context.Context, conversion domain.Conversion) error {
	m := mapping.ToModelConversion(conversion)
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO conversions (`+conversionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6);`,
		m.ConversionID, m.UserID, m.USDAmount, m.LBPAmount, m.USDToLBP, m.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save conversion %s: %w", m.ConversionID, err)
	}
	return nil
}

// FindConversionsByUserID returns a user's conversions, newest first.
func (r *PgxConversionRepository) FindConversionsByUserID(ctx context.Context, userID string) ([]domain.Conversion, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+conversionColumns+` FROM conversions
		 WHERE user_id = $1 ORDER BY recorded_at DESC, conversion_id;`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversions for %s: %w", userID, err)
	}
	defer rows.Close()

	conversions := []models.Conversion{}
	for rows.Next() {
		var m models.Conversion
		if err := rows.Scan(&m.ConversionID, &m.UserID, &m.USDAmount, &m.LBPAmount, &m.USDToLBP, &m.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversion row: %w", err)
		}
		conversions = append(conversions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating conversion rows: %w", err)
	}
	return mapping.ToDomainConversions(conversions), nil
}

// FindLatestConversionByUserID returns the user's most recent conversion.
func (r *PgxConversionRepository) FindLatestConversionByUserID(ctx context.Context, userID string) (*domain.Conversion, error) {
	var m models.Conversion
	err := r.Pool.QueryRow(ctx,
		`SELECT `+conversionColumns+` FROM conversions
		 WHERE user_id = $1 ORDER BY recorded_at DESC, conversion_id LIMIT 1;`, userID,
	).Scan(&m.ConversionID, &m.UserID, &m.USDAmount, &m.LBPAmount, &m.USDToLBP, &m.RecordedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest conversion for %s: %w", userID, err)
	}
	c := mapping.ToDomainConversion(m)
	return &c, nil
}

// SumUSDToLBPSince totals the USD->LBP records inside the derivation window.
func (r *PgxConversionRepository) SumUSDToLBPSince(ctx context.Context, since time.Time) (decimal.Decimal, decimal.Decimal, int64, error) {
	var usdTotal, lbpTotal decimal.Decimal
	var count int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(usd_amount), 0), COALESCE(SUM(lbp_amount), 0), COUNT(*)
		 FROM conversions WHERE usd_to_lbp AND recorded_at >= $1;`, since,
	).Scan(&usdTotal, &lbpTotal, &count)
	if err != nil {
		return decimal.Zero, decimal.Zero, 0, fmt.Errorf("failed to aggregate conversions: %w", err)
	}
	return usdTotal, lbpTotal, count, nil
}
