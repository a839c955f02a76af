// Package signature authenticates provider notifications via a keyed hash
// over the raw request body.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// Algorithm is the only identifier accepted in the Authorization header.
const Algorithm = "HMAC_SHA256"

// ErrEmptySecret rejects construction without a shared secret, so a missing
// HMAC_SECRET fails startup instead of silently accepting everything.
var ErrEmptySecret = errors.New("hmac secret must not be empty")

// Verifier checks provider signatures against the shared secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Verifier{secret: []byte(secret)}, nil
}

// Verify expects a header of the form "HMAC_SHA256 <hex-digest>" and accepts
// only when the digest equals the lowercase hex HMAC-SHA256 of the exact body
// bytes. Any malformation rejects.
func (v *Verifier) Verify(header string, body []byte) bool {
	algorithm, digest, ok := strings.Cut(header, " ")
	if !ok || algorithm != Algorithm || digest == "" {
		return false
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(digest))
}
