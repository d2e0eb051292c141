package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portsrepo "github.com/zein-l/Currency-exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

type ratingService struct {
	ratingRepo portsrepo.RatingRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
}

// NewRatingService creates a new rating service.
func NewRatingService(ratingRepo portsrepo.RatingRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.RatingSvcFacade {
	return &ratingService{ratingRepo: ratingRepo, userRepo: userRepo}
}

func (s *ratingService) RecordRating(ctx context.Context, raterID string, req dto.CreateRatingRequest) (*domain.Rating, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.RateeID == raterID {
		return nil, fmt.Errorf("cannot rate yourself: %w", apperrors.ErrValidation)
	}
	if req.Score < 1 || req.Score > 5 {
		return nil, fmt.Errorf("score must be between 1 and 5: %w", apperrors.ErrValidation)
	}
	if _, err := s.userRepo.FindUserByID(ctx, req.RateeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("ratee %s does not exist: %w", req.RateeID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to verify ratee: %w", err)
	}

	rating := domain.Rating{
		RatingID:  uuid.NewString(),
		RaterID:   raterID,
		RateeID:   req.RateeID,
		Score:     req.Score,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := s.ratingRepo.SaveRating(ctx, rating); err != nil {
		logger.Error("Failed to save rating", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record rating: %w", err)
	}

	logger.Info("Rating recorded", slog.String("rating_id", rating.RatingID), slog.Int("score", rating.Score))
	return &rating, nil
}

func (s *ratingService) ListRatingsForUser(ctx context.Context, rateeID string) ([]domain.Rating, error) {
	ratings, err := s.ratingRepo.FindRatingsByRateeID(ctx, rateeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}
