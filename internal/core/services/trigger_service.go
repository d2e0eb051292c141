package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

type triggerService struct {
	triggerRepo  portsrepo.TriggerRepositoryFacade
	rateProvider portssvc.RateProvider
}

// NewTriggerService creates a new trigger service.
func NewTriggerService(triggerRepo portsrepo.TriggerRepositoryFacade, rateProvider portssvc.RateProvider) portssvc.TriggerSvcFacade {
	return &triggerService{triggerRepo: triggerRepo, rateProvider: rateProvider}
}

func (s *triggerService) CreateTrigger(ctx context.Context, req dto.CreateTriggerRequest) (*domain.RateTrigger, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	operator, err := domain.ParseTriggerOperator(req.Operator)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}
	if !req.Threshold.IsPositive() {
		return nil, fmt.Errorf("threshold must be positive: %w", apperrors.ErrValidation)
	}
	if req.BaseCurrency == req.TargetCurrency {
		return nil, fmt.Errorf("base and target currency must differ: %w", apperrors.ErrValidation)
	}

	trigger := domain.RateTrigger{
		TriggerID:      uuid.NewString(),
		BaseCurrency:   req.BaseCurrency,
		TargetCurrency: req.TargetCurrency,
		Operator:       operator,
		Threshold:      req.Threshold,
		Triggered:      false,
		CreatedAt:      time.Now(),
	}

	if err := s.triggerRepo.SaveTrigger(ctx, trigger); err != nil {
		logger.Error("Failed to save trigger", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create trigger: %w", err)
	}

	logger.Info("Trigger created", slog.String("trigger_id", trigger.TriggerID), slog.String("pair", trigger.BaseCurrency+trigger.TargetCurrency))
	return &trigger, nil
}

// CheckTriggers evaluates every untriggered trigger against live rates. Live
// quotes are fetched once per base currency; a trigger whose quote cannot be
// obtained is reported as a failure, never silently skipped. A firing trigger
// is flipped with a conditional update so concurrent passes alert at most once.
func (s *triggerService) CheckTriggers(ctx context.Context) (*domain.TriggerCheckOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	triggers, err := s.triggerRepo.ListUntriggered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list triggers: %w", err)
	}

	outcome := &domain.TriggerCheckOutcome{
		Alerts:   []domain.TriggerAlert{},
		Checked:  len(triggers),
		Failures: []domain.TriggerFailure{},
	}
	if len(triggers) == 0 {
		return outcome, nil
	}

	// One quote fetch per base currency covers every trigger on that base.
	targetsByBase := map[string][]string{}
	for _, t := range triggers {
		targetsByBase[t.BaseCurrency] = append(targetsByBase[t.BaseCurrency], t.TargetCurrency)
	}
	quotesByBase := map[string]map[string]decimal.Decimal{}
	fetchErrByBase := map[string]error{}
	for base, targets := range targetsByBase {
		live, err := s.rateProvider.LiveRates(ctx, base, targets)
		if err != nil {
			fetchErrByBase[base] = err
			continue
		}
		quotesByBase[base] = live.Quotes
	}

	for _, trigger := range triggers {
		if fetchErr, ok := fetchErrByBase[trigger.BaseCurrency]; ok {
			outcome.Failures = append(outcome.Failures, domain.TriggerFailure{
				TriggerID: trigger.TriggerID,
				Reason:    fetchErr.Error(),
			})
			continue
		}
		rate, ok := quotesByBase[trigger.BaseCurrency][trigger.BaseCurrency+trigger.TargetCurrency]
		if !ok {
			outcome.Failures = append(outcome.Failures, domain.TriggerFailure{
				TriggerID: trigger.TriggerID,
				Reason:    fmt.Sprintf("no quote for pair %s%s", trigger.BaseCurrency, trigger.TargetCurrency),
			})
			continue
		}

		if !trigger.Operator.Compare(rate, trigger.Threshold) {
			continue
		}

		flipped, err := s.triggerRepo.MarkTriggered(ctx, trigger.TriggerID)
		if err != nil {
			outcome.Failures = append(outcome.Failures, domain.TriggerFailure{
				TriggerID: trigger.TriggerID,
				Reason:    err.Error(),
			})
			continue
		}
		if !flipped {
			// A concurrent pass already fired this trigger.
			continue
		}

		trigger.Triggered = true
		outcome.Alerts = append(outcome.Alerts, domain.TriggerAlert{
			Trigger:  trigger,
			LiveRate: rate,
		})
		logger.Info("Trigger fired", slog.String("trigger_id", trigger.TriggerID), slog.String("rate", rate.String()))
	}

	return outcome, nil
}
