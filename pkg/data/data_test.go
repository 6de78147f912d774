package data

import (
	"strings"
	"testing"
)

func TestUniqueUsername(t *testing.T) {
	t.Run("uses prefix", func(t *testing.T) {
		name := UniqueUsername("smoke")
		if !strings.HasPrefix(name, "smoke-") {
			t.Errorf("Expected prefix 'smoke-', got %q", name)
		}
	})

	t.Run("defaults prefix when empty", func(t *testing.T) {
		name := UniqueUsername("")
		if !strings.HasPrefix(name, "e2e-user-") {
			t.Errorf("Expected default prefix, got %q", name)
		}
	})

	t.Run("values are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			name := UniqueUsername("u")
			if seen[name] {
				t.Fatalf("Duplicate username generated: %q", name)
			}
			seen[name] = true
		}
	})
}

func TestUniqueEmail(t *testing.T) {
	t.Run("uses domain", func(t *testing.T) {
		email := UniqueEmail("corp.test")
		if !strings.HasSuffix(email, "@corp.test") {
			t.Errorf("Expected domain 'corp.test', got %q", email)
		}
	})

	t.Run("defaults domain when empty", func(t *testing.T) {
		email := UniqueEmail("")
		if !strings.HasSuffix(email, "@example.test") {
			t.Errorf("Expected default domain, got %q", email)
		}
	})

	t.Run("values are unique", func(t *testing.T) {
		if UniqueEmail("x.test") == UniqueEmail("x.test") {
			t.Error("Two generated emails should not collide")
		}
	})
}

func TestRandomString(t *testing.T) {
	t.Run("has requested length", func(t *testing.T) {
		for _, n := range []int{1, 8, 64} {
			if got := len(RandomString(n)); got != n {
				t.Errorf("RandomString(%d) returned %d characters", n, got)
			}
		}
	})

	t.Run("non-positive length yields empty string", func(t *testing.T) {
		if RandomString(0) != "" || RandomString(-5) != "" {
			t.Error("Expected empty string for non-positive length")
		}
	})

	t.Run("only alphanumeric characters", func(t *testing.T) {
		s := RandomString(256)
		for _, c := range s {
			if !strings.ContainsRune(alphanumeric, c) {
				t.Errorf("Unexpected character %q in %q", c, s)
			}
		}
	})
}
