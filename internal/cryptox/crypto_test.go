package cryptox

import (
	"bytes"
	"testing"
)

func TestGenerateSalt_SizeAndUniqueness(t *testing.T) {
	a := GenerateSalt()
	b := GenerateSalt()

	if len(a) != SaltSize || len(b) != SaltSize {
		t.Fatalf("expected %d-byte salts, got %d and %d", SaltSize, len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Fatalf("two generated salts are identical")
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")

	k1 := DeriveKey([]byte("hunter2"), salt)
	k2 := DeriveKey([]byte("hunter2"), salt)

	if !bytes.Equal(k1, k2) {
		t.Fatalf("same password and salt must derive the same key")
	}
	if len(k1) != 32 {
		t.Fatalf("expected 32-byte key, got %d", len(k1))
	}
}

func TestDeriveKey_SaltMatters(t *testing.T) {
	k1 := DeriveKey([]byte("hunter2"), []byte("salt-one-salt-one-salt-one-salt1"))
	k2 := DeriveKey([]byte("hunter2"), []byte("salt-two-salt-two-salt-two-salt2"))

	if bytes.Equal(k1, k2) {
		t.Fatalf("different salts must derive different keys")
	}
}

func TestVerifierFromPassword_RoundTrip(t *testing.T) {
	salt := GenerateSalt()

	stored := VerifierFromPassword([]byte("correct horse"), salt)
	candidate := VerifierFromPassword([]byte("correct horse"), salt)

	if !CheckVerifier(stored, candidate) {
		t.Fatalf("verifier for the same password and salt must match")
	}
}

func TestCheckVerifier_RejectsWrongPassword(t *testing.T) {
	salt := GenerateSalt()

	stored := VerifierFromPassword([]byte("correct horse"), salt)
	candidate := VerifierFromPassword([]byte("battery staple"), salt)

	if CheckVerifier(stored, candidate) {
		t.Fatalf("verifier for a different password must not match")
	}
}

func TestCheckVerifier_LengthMismatch(t *testing.T) {
	if CheckVerifier([]byte{1, 2, 3}, []byte{1, 2}) {
		t.Fatalf("verifiers of different lengths must not match")
	}
}
