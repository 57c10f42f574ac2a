package id

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
// The value is a random (v4) UUID with the hyphens dropped.
func NewID32() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// Valid reports whether s looks like an id produced by NewID32.
func Valid(s string) bool {
	if len(s) != 32 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
