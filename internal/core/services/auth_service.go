package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/platform/config"
	"github.com/zein-l/Currency-exchange-backend/internal/utils"
)

// tokenService implements TokenSvcFacade. It requires access to application
// configuration for the signing secret and expiry.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// googleAuthService implements GoogleAuthSvcFacade by exchanging the
// frontend's authorization code and validating the returned ID token.
type googleAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleAuthService creates a new instance of googleAuthService.
func NewGoogleAuthService(cfg *config.Config) portssvc.GoogleAuthSvcFacade {
	return &googleAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ExchangeCode exchanges an authorization code for tokens and returns the
// identity asserted by the validated ID token.
func (s *googleAuthService) ExchangeCode(ctx context.Context, code string) (*portssvc.GoogleUserInfo, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, fmt.Errorf("google sign-in is not configured: %w", apperrors.ErrUpstream)
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", apperrors.ErrUpstream)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("oauth token response carries no id_token: %w", apperrors.ErrUpstream)
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", apperrors.ErrUpstream)
	}

	info := &portssvc.GoogleUserInfo{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	return info, nil
}
