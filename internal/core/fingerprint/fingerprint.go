// Package fingerprint derives a weak, stable pseudo-identity for anonymous
// visitors. A fingerprint is never an authentication credential.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"promotrack/internal/core/domain"
)

// version is mixed into the digest so that a change of inputs produces a
// disjoint fingerprint space instead of silent collisions.
const version = "fp1"

// Length is the length of every fingerprint in characters.
const Length = sha256.Size * 2

// Generate returns the fingerprint of a visitor tuple. Identical input always
// yields the identical fingerprint; missing fields are empty strings.
func Generate(ip, userAgent, acceptLanguage string) string {
	h := sha256.New()
	for _, part := range []string{version, strings.TrimSpace(ip), strings.TrimSpace(userAgent), normalizeLanguage(acceptLanguage)} {
		h.Write([]byte(part))
		h.Write([]byte{0x1f})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Resolve returns the visitor's fingerprint hint when it is well formed and
// derives one from the request attributes otherwise.
func Resolve(v domain.VisitorContext) string {
	if hint := strings.ToLower(strings.TrimSpace(v.FingerprintHint)); Valid(hint) {
		return hint
	}
	return Generate(v.IP, v.UserAgent, v.AcceptLanguage)
}

// Valid reports whether s has the shape of a fingerprint.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// Digest returns a short digest of the user-agent and locale pair. The fraud
// detector uses it to compare sessions without storing raw headers.
func Digest(userAgent, acceptLanguage string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(userAgent) + "\x1f" + normalizeLanguage(acceptLanguage)))
	return hex.EncodeToString(sum[:8])
}

func normalizeLanguage(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
