// Package cryptox implements the password-verifier scheme shared by the
// Gatekeeper client and server. The client derives a verifier from the
// operator's password and a per-user salt; the server stores and compares
// verifiers, never the password itself.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/SteveJRobertson/gatekeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the number of random bytes in a per-user salt.
const SaltSize = 32

// GenerateSalt returns a fresh random salt.
func GenerateSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// DeriveKey stretches a password with argon2id using the given salt.
// Parameters follow the argon2 package recommendations for interactive use.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier produces the stored verifier for a derived key.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// VerifierFromPassword is the full client-side derivation:
// password + salt -> argon2id key -> sha256 verifier.
func VerifierFromPassword(password []byte, salt []byte) []byte {
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	return MakeVerifier(key)
}

// CheckVerifier compares a stored verifier with a candidate in constant time.
func CheckVerifier(verifier, candidate []byte) bool {
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}
