// Package cryptox wraps the password hashing and randomness primitives used
// by the credential store.
package cryptox

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// HashPassword returns a bcrypt hash of password. bcrypt embeds a fresh
// random salt in every hash, so hashing the same password twice yields
// different strings.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ComparePassword reports whether candidate matches hash. A malformed hash
// is treated as a mismatch.
func ComparePassword(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

// ValidCost reports whether cost is accepted by bcrypt.
func ValidCost(cost int) bool {
	return cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost
}

// MakeRandHexString returns size random bytes encoded as hex, so the
// result is twice as long as size.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
