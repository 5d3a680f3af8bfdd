package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash of the plaintext for storage. Only the
// hash ever reaches the database.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPasswordHash reports whether the plaintext matches the stored bcrypt
// hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
