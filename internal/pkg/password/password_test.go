package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if !h.Verify("s3cret", hash) {
		t.Fatalf("expected password to verify")
	}
	if h.Verify("wrong", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	if a == b {
		t.Fatalf("expected distinct salted hashes")
	}
}

func TestHasher_VerifiesHashFromOtherCost(t *testing.T) {
	old, err := bcrypt.GenerateFromPassword([]byte("legacy"), bcrypt.MinCost+1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	h := NewHasher(bcrypt.MinCost)
	if !h.Verify("legacy", string(old)) {
		t.Fatalf("expected hash with a different cost to verify")
	}
}

func TestHasher_MalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("expected malformed hash to fail verification")
	}
}

func TestNewHasher_InvalidCostFallsBack(t *testing.T) {
	if got := NewHasher(0).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", got)
	}
	if got := NewHasher(99).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", got)
	}
}
