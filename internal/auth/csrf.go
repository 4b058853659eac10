package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
)

// NewCSRFSecret generates a fresh per-account anti-forgery secret. Rotated
// on every login and registration; returned to the client once in the
// response body, never in a cookie.
func NewCSRFSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// CSRFTokenMatches compares a presented token against the stored secret in
// constant time.
func CSRFTokenMatches(presented, stored string) bool {
	if presented == "" || stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) == 1
}
