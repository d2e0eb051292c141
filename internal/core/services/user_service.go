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
	"github.com/zein-l/Currency-exchange-backend/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// Authenticate verifies email+password. Both a missing user and a wrong
// password surface as ErrForbidden so callers cannot probe for accounts.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrForbidden)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindOrCreateByGoogleID maps the external identity subject to the local user
// row, creating it on first sight.
func (s *userService) FindOrCreateByGoogleID(ctx context.Context, googleID, email, name string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByGoogleID(ctx, googleID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up external identity: %w", err)
	}

	now := time.Now()
	newUser := domain.User{
		UserID:   uuid.NewString(),
		Name:     name,
		Email:    email,
		GoogleID: googleID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		logger.Error("Failed to create user for external identity", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create user for external identity: %w", err)
	}

	logger.Info("User created from external identity", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}
