// Package security contains everything related to the security of user data
package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Hasher produces deterministic keyed digests of user secrets. Equal
// inputs always yield equal digests, which is what lets the token
// handler re-hash a password and compare it against the stored value.
type Hasher struct {
	secret []byte
}

func NewHasher(secret string) *Hasher {
	return &Hasher{secret: []byte(secret)}
}

// Digest returns the hex-encoded HMAC-SHA256 of s under the configured secret.
func (h *Hasher) Digest(s string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(s))
	return hex.EncodeToString(mac.Sum(nil))
}
