// ABOUTME: Tests for bcrypt password hashing helpers
// ABOUTME: Verifies hash round trips and mismatch rejection

package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("hash = %q, want a bcrypt digest", hash)
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("CheckPassword() = false for the correct password")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("CheckPassword() = true for a wrong password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical, salt missing")
	}
}
