package repositories

import (
	"context"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// TriggerRepositoryFacade defines persistence for rate triggers.
type TriggerRepositoryFacade interface {
	SaveTrigger(ctx context.Context, trigger domain.RateTrigger) error
	ListUntriggered(ctx context.Context) ([]domain.RateTrigger, error)
	// MarkTriggered flips triggered=false -> true; reports whether this call
	// performed the flip, so concurrent checks fire each trigger once.
	MarkTriggered(ctx context.Context, triggerID string) (bool, error)
}
