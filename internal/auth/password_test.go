package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("testpass123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "testpass123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !hasher.Verify("testpass123", hash) {
		t.Fatal("expected Verify to accept the original password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hasher.Verify("wrong", hash) {
		t.Fatal("expected Verify to reject a different password")
	}
}

func TestHash_Salted(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}
	if !hasher.Verify("same-password", first) || !hasher.Verify("same-password", second) {
		t.Fatal("both hashes must verify against the original password")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)

	for _, malformed := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if hasher.Verify("anything", malformed) {
			t.Fatalf("expected Verify to reject malformed hash %q", malformed)
		}
	}
}

func TestNewPasswordHasher_CostClamped(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(99)

	hash, err := hasher.Hash("pass")
	if err != nil {
		t.Fatalf("Hash error with clamped cost: %v", err)
	}
	if !hasher.Verify("pass", hash) {
		t.Fatal("expected round-trip with clamped cost")
	}
}
