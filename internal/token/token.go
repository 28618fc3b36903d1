// Package token generates the random URL prefix protecting a share.
package token

import (
	"crypto/rand"
	"fmt"
)

// alphabet is the URL-safe character set prefixes are drawn from.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random token of the given length, one alphabet
// character per length unit, using crypto/rand. The prefix is the only
// secret protecting the payload, so a general-purpose PRNG is not enough.
func Generate(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("token length must be at least 1, got %d", length)
	}

	// Bytes at or above the largest multiple of len(alphabet) are
	// rejected to keep the character distribution uniform.
	max := byte(256 - 256%len(alphabet))

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= max {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
