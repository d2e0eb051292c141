package dto

import (
	"time"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
)

// CreateRatingRequest defines the payload for rating a counterparty.
type CreateRatingRequest struct {
	RateeID string `json:"rateeID" binding:"required"`
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// RatingResponse defines the structure for API responses containing rating details.
type RatingResponse struct {
	RatingID  string    `json:"ratingID"`
	RaterID   string    `json:"raterID"`
	RateeID   string    `json:"rateeID"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToRatingResponse converts a domain.Rating to RatingResponse DTO.
func ToRatingResponse(r *domain.Rating) RatingResponse {
	return RatingResponse{
		RatingID:  r.RatingID,
		RaterID:   r.RaterID,
		RateeID:   r.RateeID,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
