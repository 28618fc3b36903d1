package token_test

import (
	"regexp"
	"testing"

	"github.com/joeka/localsecret/internal/token"
)

var urlSafe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

func TestGenerate_LengthAndCharset(t *testing.T) {
	for _, length := range []int{1, 8, 42, 128} {
		got, err := token.Generate(length)
		if err != nil {
			t.Fatalf("Generate(%d): %v", length, err)
		}
		if len(got) != length {
			t.Fatalf("Generate(%d) returned %d characters: %q", length, len(got), got)
		}
		if !urlSafe.MatchString(got) {
			t.Fatalf("Generate(%d) returned non URL-safe token: %q", length, got)
		}
	}
}

func TestGenerate_Unique(t *testing.T) {
	a, err := token.Generate(16)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := token.Generate(16)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a == b {
		t.Fatalf("two generated tokens collided: %q", a)
	}
}

func TestGenerate_RejectsInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		if _, err := token.Generate(length); err == nil {
			t.Fatalf("Generate(%d): expected error", length)
		}
	}
}
