package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// MinSigningKeyBytes is the size of the generated admin token signing key.
const MinSigningKeyBytes = 32

// NewSigningKey returns n random bytes hex encoded, for use as an HMAC key
// when none is configured. n below MinSigningKeyBytes is raised to it.
func NewSigningKey(n int) (string, error) {
	if n < MinSigningKeyBytes {
		n = MinSigningKeyBytes
	}
	key := make([]byte, n)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(key), nil
}
