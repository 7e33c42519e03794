package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "pw123" {
		t.Fatalf("hash equals plaintext")
	}

	ok, err := VerifyPassword(hash, "pw123")
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatalf("correct password did not verify")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := VerifyPassword(hash, "different")
	if err != nil {
		t.Fatalf("expected no error for a plain mismatch, got %v", err)
	}
	if ok {
		t.Fatalf("wrong password verified")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	ok, err := VerifyPassword("not-a-bcrypt-hash", "pw123")
	if err == nil {
		t.Fatalf("expected error for malformed stored hash, got nil")
	}
	if ok {
		t.Fatalf("malformed hash verified")
	}
}

func TestHashPassword_SaltsEveryHash(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("pw123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("pw123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password are identical; salt missing")
	}
}
