package id

import (
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/google/uuid"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	// length
	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	// lowercase hex only (no separators/prefixes)
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	// decodes to exactly 16 bytes
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewID32_NoUppercaseOrHyphen(t *testing.T) {
	id := NewID32()
	for _, r := range id {
		if r >= 'A' && r <= 'Z' {
			t.Fatalf("found uppercase letter in id: %q", id)
		}
		if r == '-' {
			t.Fatalf("found hyphen in id: %q", id)
		}
	}
}

func TestNewID32_IsVersion4UUID(t *testing.T) {
	u, err := uuid.Parse(NewID32())
	if err != nil {
		t.Fatalf("uuid.Parse: %v", err)
	}
	if u.Version() != 4 {
		t.Fatalf("version = %d, want 4", u.Version())
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		NewID32():                            true,
		"0123456789abcdef0123456789abcdef":   true,
		"0123456789ABCDEF0123456789abcdef":   false,
		"0123456789abcdef0123456789abcde":    false,
		"0123456789abcdef0123456789abcdeg":   false,
		"01234567-89ab-cdef-0123-456789abcd": false,
		"":                                   false,
	}
	for in, want := range cases {
		if got := Valid(in); got != want {
			t.Errorf("Valid(%q) = %v, want %v", in, got, want)
		}
	}
}
