// ABOUTME: Cryptographically secure random string generation for env values
// ABOUTME: Draws from the 62-char alphanumeric alphabet without modulo bias

package secret

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var alphabetLen = big.NewInt(int64(len(alphabet)))

// String returns a random alphanumeric string of exactly length characters
// drawn from the operating system's CSPRNG.
func String(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("random string length must be positive, got %d", length)
	}
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}

// MustString is String for call sites where a failing CSPRNG is fatal.
func MustString(length int) string {
	s, err := String(length)
	if err != nil {
		panic(err)
	}
	return s
}
