// ABOUTME: Tests for secure random string generation: length, alphabet, inequality
// ABOUTME: Uniqueness is tested by inequality, not by statistical distribution

package secret

import (
	"strings"
	"testing"
)

func TestString_Length(t *testing.T) {
	t.Parallel()

	for _, length := range []int{1, 8, 32, 64} {
		s, err := String(length)
		if err != nil {
			t.Fatalf("String(%d): %v", length, err)
		}
		if len(s) != length {
			t.Errorf("String(%d) len = %d", length, len(s))
		}
	}
}

func TestString_Alphabet(t *testing.T) {
	t.Parallel()

	s, err := String(256)
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	for _, r := range s {
		if !strings.ContainsRune(alphabet, r) {
			t.Errorf("character %q outside alphanumeric alphabet", r)
		}
	}
}

func TestString_SuccessiveCallsDiffer(t *testing.T) {
	t.Parallel()

	a, err := String(32)
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	b, err := String(32)
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if a == b {
		t.Errorf("two 32-char random strings are equal: %q", a)
	}
}

func TestString_RejectsNonPositiveLength(t *testing.T) {
	t.Parallel()

	for _, length := range []int{0, -1} {
		if _, err := String(length); err == nil {
			t.Errorf("String(%d) succeeded, want error", length)
		}
	}
}
