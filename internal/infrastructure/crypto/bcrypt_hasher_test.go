package crypto

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal plaintext")
	}
	if !h.Verify("s3cret", hash) {
		t.Fatal("expected matching password to verify")
	}
	if h.Verify("wrong", hash) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	h := NewBcryptHasher(5)
	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != 5 {
		t.Fatalf("expected cost 5, got %d", cost)
	}
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	if h := NewBcryptHasher(0); h.cost != DefaultCost {
		t.Fatalf("expected DefaultCost, got %d", h.cost)
	}
	if h := NewBcryptHasher(99); h.cost != DefaultCost {
		t.Fatalf("expected DefaultCost, got %d", h.cost)
	}
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	if h.Verify("pw", "") {
		t.Fatal("empty hash must not verify")
	}
	if h.Verify("pw", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash must not verify")
	}
}
