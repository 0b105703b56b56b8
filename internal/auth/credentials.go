package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// CredentialManager owns password hashing and verification.
type CredentialManager struct {
	cost int
}

// NewCredentialManager creates a credential manager with the default cost.
func NewCredentialManager() *CredentialManager {
	return &CredentialManager{cost: bcryptCost}
}

// Hash derives a salted one-way digest from a plaintext password. bcrypt
// generates a fresh random salt per call, so equal plaintexts produce
// different digests.
func (m *CredentialManager) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), m.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext is the password the hash was derived
// from. Comparison is constant-time inside bcrypt; a malformed hash yields
// false, never an error.
func (m *CredentialManager) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
