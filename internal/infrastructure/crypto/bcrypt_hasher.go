// Package crypto holds the credential hashing adapter.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the salt rounds used for every stored password.
const DefaultCost = 10

// BcryptHasher hashes with a fixed cost so every rehash is comparable.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher falls back to DefaultCost when cost is outside bcrypt's range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(b), nil
}

// Verify reports whether plaintext matches hash. Malformed hashes never match.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
