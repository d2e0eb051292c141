package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword bcrypt-hashes a plaintext password at the default cost. Only
// local accounts carry a hash; Google sign-in accounts store an empty one.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
// An empty hash matches nothing, which keeps Google-only accounts out of the
// password login path.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
