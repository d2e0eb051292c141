package models

import "time"

// Rating represents a row in the ratings table. Append-only; there are no
// update or delete paths.
type Rating struct {
	RatingID  string    `db:"rating_id"`
	RaterID   string    `db:"rater_id"`
	RateeID   string    `db:"ratee_id"`
	Score     int       `db:"score"` // CHECK (score BETWEEN 1 AND 5)
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}
