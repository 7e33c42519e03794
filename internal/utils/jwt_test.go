package utils

import (
	"testing"
)

func TestNewAccessTokenAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	subject := "65d0b2b3d3b0b3d3b0b3d3b0"

	tok, err := NewAccessToken(secret, subject, 60)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	got, err := ParseSubject(secret, tok.Token)
	if err != nil {
		t.Fatalf("ParseSubject error: %v", err)
	}
	if got != subject {
		t.Fatalf("subject mismatch: got %q want %q", got, subject)
	}
}

func TestParseSubject_Expired(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret", "u1", -1)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	if _, err := ParseSubject("secret", tok.Token); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParseSubject_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("right-secret", "u2", 60)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	if _, err := ParseSubject("wrong-secret", tok.Token); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseSubject_Tampered(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret", "u3", 60)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	tampered := tok.Token + "A" // extends the signature segment

	if _, err := ParseSubject("secret", tampered); err == nil {
		t.Fatalf("expected error for tampered token, got nil")
	}
}

func TestParseSubject_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := ParseSubject("k", "not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
