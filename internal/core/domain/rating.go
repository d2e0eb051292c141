package domain

import "time"

// Rating is an append-only reputation record tied to a completed trade.
// Score is bounded 1..5. Ratings are never updated or deleted.
type Rating struct {
	RatingID  string    `json:"ratingID"` // Primary Key (UUID)
	RaterID   string    `json:"raterID"`
	RateeID   string    `json:"rateeID"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
