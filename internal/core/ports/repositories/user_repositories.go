package repositories

import (
	"context"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindUserByGoogleID looks a user up by the external identity subject.
	// Returns apperrors.ErrNotFound when the subject has never been seen.
	FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
}
