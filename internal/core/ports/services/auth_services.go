package services

import (
	"context"
	"time"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
)

// UserSvcFacade defines the user management operations exposed to handlers
// and other services.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate verifies email+password credentials. Returns ErrForbidden
	// on any mismatch without revealing which part failed.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindOrCreateByGoogleID maps an external identity subject to the local
	// user row, creating it on first sight.
	FindOrCreateByGoogleID(ctx context.Context, googleID, email, name string) (*domain.User, error)
}

// TokenSvcFacade issues the application's bearer tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleUserInfo is the identity asserted by a validated Google ID token.
type GoogleUserInfo struct {
	Subject string
	Email   string
	Name    string
}

// GoogleAuthSvcFacade exchanges a frontend authorization code for a validated
// Google identity. Failures surface as ErrUpstream.
type GoogleAuthSvcFacade interface {
	ExchangeCode(ctx context.Context, code string) (*GoogleUserInfo, error)
}
