package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RandomHexString returns a hex-encoded string of byteLen random bytes from
// crypto/rand, so the result is 2*byteLen characters long. It backs the
// opaque refresh tokens and the OAuth state values.
func RandomHexString(byteLen int) (string, error) {
	if byteLen <= 0 {
		return "", fmt.Errorf("byte length must be positive")
	}
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
