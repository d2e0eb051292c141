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

// PgxTriggerRepository implements TriggerRepositoryFacade on PostgreSQL.
type PgxTriggerRepository struct {
	BaseRepository
}

// newPgxTriggerRepository creates a new repository for rate trigger data.
func newPgxTriggerRepository(pool *pgxpool.Pool) portsrepo.TriggerRepositoryFacade {
	return &PgxTriggerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TriggerRepositoryFacade = (*PgxTriggerRepository)(nil)

const triggerColumns = `trigger_id, base_currency, target_currency, operator, threshold, triggered, created_at`

// SaveTrigger inserts a new rate trigger.
func (r *PgxTriggerRepository) SaveTrigger(ctx context.Context, trigger domain.RateTrigger) error {
	m := mapping.ToModelRateTrigger(trigger)
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO rate_triggers (`+triggerColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		m.TriggerID, m.BaseCurrency, m.TargetCurrency, m.Operator, m.Threshold, m.Triggered, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save trigger %s: %w", m.TriggerID, err)
	}
	return nil
}

// ListUntriggered returns all triggers that have not fired yet.
func (r *PgxTriggerRepository) ListUntriggered(ctx context.Context) ([]domain.RateTrigger, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+triggerColumns+` FROM rate_triggers WHERE NOT triggered ORDER BY created_at, trigger_id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query untriggered triggers: %w", err)
	}
	defer rows.Close()

	triggers := []models.RateTrigger{}
	for rows.Next() {
		var m models.RateTrigger
		if err := rows.Scan(&m.TriggerID, &m.BaseCurrency, &m.TargetCurrency, &m.Operator,
			&m.Threshold, &m.Triggered, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trigger row: %w", err)
		}
		triggers = append(triggers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating trigger rows: %w", err)
	}
	return mapping.ToDomainRateTriggers(triggers), nil
}

// MarkTriggered flips triggered to true if it is still false. The conditional
// update makes concurrent checks fire each trigger exactly once: only the
// caller whose update affects a row reports true.
func (r *PgxTriggerRepository) MarkTriggered(ctx context.Context, triggerID string) (bool, error) {
	ct, err := r.Pool.Exec(ctx,
		`UPDATE rate_triggers SET triggered = TRUE WHERE trigger_id = $1 AND NOT triggered;`, triggerID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark trigger %s: %w", triggerID, err)
	}
	return ct.RowsAffected() > 0, nil
}
