// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying derivation (PBKDF2 here), keeping the domain pure.
type PasswordHasher interface {
	// Hash derives a salted credential from a plaintext password and returns
	// it as a single self-describing encoded string. The encoding embeds the
	// iteration count and salt so that verification never depends on
	// caller-supplied parameters, and so parameters can change per record
	// without breaking stored credentials.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored encoded credential.
	// A malformed stored value returns false rather than an error; a caller
	// must not be able to tell a corrupt credential apart from a wrong
	// password, neither from the result nor from timing.
	Check(password, encoded string) bool
}
