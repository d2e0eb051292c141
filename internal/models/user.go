package models

import "time"

// User represents a row in the users table.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	GoogleID     string `db:"google_id"` // Nullable; external identity subject
	PasswordHash string `db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
