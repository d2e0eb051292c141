package dto

import (
	"time"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// UserResponse defines the structure for API responses containing user details.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
