package random

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenLength is the number of random bytes in a token before encoding.
const TokenLength = 32

// NewToken returns an opaque URL-safe token. Tokens authorize RSVP actions,
// so they carry no structure and cannot be derived from any stored field.
func NewToken() (string, error) {
	b := make([]byte, TokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
