package domain

import "time"

// User represents a user of the platform in the domain.
// A user is created either through local registration or on first sight of an
// external identity subject (Google sign-in), which maps 1:1 via GoogleID.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	GoogleID     string `json:"-"` // External identity subject, empty for local-only users
	PasswordHash string `json:"-"` // Empty for users created via external identity
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
