// ABOUTME: Password hashing and comparison helpers built on bcrypt
// ABOUTME: Provides a dummy-compare path so unknown emails cost the same as mismatches

package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a valid bcrypt digest of a throwaway password. It is compared
// against when no user exists for an email so the failure takes as long as a
// real mismatch.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword computes a salted bcrypt hash of the raw password at the
// default cost (10).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the raw password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyCheck performs a bcrypt comparison against a fixed hash to maintain
// constant timing when the looked-up user does not exist.
func DummyCheck(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
