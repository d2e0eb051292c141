package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	"github.com/zein-l/Currency-exchange-backend/internal/models"
	"github.com/zein-l/Currency-exchange-backend/internal/utils/mapping"
)

// PgxRatingRepository implements RatingRepositoryFacade on PostgreSQL.
type PgxRatingRepository struct {
	BaseRepository
}

// newPgxRatingRepository creates a new repository for rating data.
func newPgxRatingRepository(pool *pgxpool.Pool) portsrepo.RatingRepositoryFacade {
	return &PgxRatingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RatingRepositoryFacade = (*PgxRatingRepository)(nil)

// SaveRating appends a rating to the ledger.
func (r *PgxRatingRepository) SaveRating(ctx context.Context, rating domain.Rating) error {
	m := mapping.ToModelRating(rating)
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO ratings (rating_id, rater_id, ratee_id, score, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6);`,
		m.RatingID, m.RaterID, m.RateeID, m.Score, m.Comment, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save rating %s: %w", m.RatingID, err)
	}
	return nil
}

// FindRatingsByRateeID returns all ratings received by a user, newest first.
func (r *PgxRatingRepository) FindRatingsByRateeID(ctx context.Context, rateeID string) ([]domain.Rating, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT rating_id, rater_id, ratee_id, score, comment, created_at
		 FROM ratings WHERE ratee_id = $1 ORDER BY created_at DESC, rating_id;`, rateeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings for %s: %w", rateeID, err)
	}
	defer rows.Close()

	ratings := []domain.Rating{}
	for rows.Next() {
		var m models.Rating
		if err := rows.Scan(&m.RatingID, &m.RaterID, &m.RateeID, &m.Score, &m.Comment, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rating row: %w", err)
		}
		ratings = append(ratings, mapping.ToDomainRating(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating rating rows: %w", err)
	}
	return ratings, nil
}
