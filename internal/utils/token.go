package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// NewToken returns an opaque bearer token: 24 bytes of cryptographically
// secure randomness, base64-encoded (32 characters).  The value is stored
// as-is on the user row; it carries no structure and is never parsed.
func NewToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
