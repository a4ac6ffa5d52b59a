// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// SecretVerifier checks a submitted password against one stored secret format.
type SecretVerifier interface {
	// Supports reports whether the stored secret is in a format this verifier understands.
	// The decision is made by inspecting the stored value only.
	Supports(secret string) bool

	// Verify compares a plaintext password with the stored secret.
	// A malformed secret yields an error; a mismatch yields false with a nil error.
	Verify(password, secret string) (bool, error)
}

// PasswordHasher produces one-way hashes for new secrets and verifies its own format.
type PasswordHasher interface {
	SecretVerifier

	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)
}
