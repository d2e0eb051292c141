package dto

import "time"

// RegisterRequest defines the payload for local account registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the payload for local login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ExchangeCodeRequest carries the authorization code obtained from the
// Google sign-in flow on the frontend.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// AuthResponse is returned by every authentication endpoint.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
