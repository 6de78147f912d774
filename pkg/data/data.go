// Package data generates the unique throwaway values end-to-end tests
// feed into forms: usernames, email addresses, and random strings.
// Values are unique across parallel workers so tests never collide on
// server-side uniqueness constraints.
package data

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// shortID returns the first segment of a fresh UUID, enough entropy for
// test-data uniqueness while keeping values readable in failure output.
func shortID() string {
	return strings.SplitN(uuid.New().String(), "-", 2)[0]
}

// UniqueUsername returns a username with the given prefix and a unique
// suffix, e.g. "e2e-user-9f86d081".
func UniqueUsername(prefix string) string {
	if prefix == "" {
		prefix = "e2e-user"
	}
	return fmt.Sprintf("%s-%s", prefix, shortID())
}

// UniqueEmail returns a unique address under the given domain,
// e.g. "e2e-9f86d081@example.test".
func UniqueEmail(domain string) string {
	if domain == "" {
		domain = "example.test"
	}
	return fmt.Sprintf("e2e-%s@%s", shortID(), domain)
}

// RandomString returns n random lowercase alphanumeric characters.
func RandomString(n int) string {
	if n <= 0 {
		return ""
	}

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// OS crypto source failing is a critical unrecoverable state
		panic(fmt.Errorf("crypto/rand failed: %w", err))
	}
	for i := range b {
		b[i] = alphanumeric[int(b[i])%len(alphanumeric)]
	}
	return string(b)
}
