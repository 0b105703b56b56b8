package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialManager_HashAndVerify(t *testing.T) {
	m := NewCredentialManager()

	hash, err := m.Hash("pw123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123", hash)

	assert.True(t, m.Verify("pw123", hash))
	assert.False(t, m.Verify("pw124", hash))
}

func TestCredentialManager_HashIsSalted(t *testing.T) {
	m := NewCredentialManager()

	first, err := m.Hash("same-password")
	assert.NoError(t, err)
	second, err := m.Hash("same-password")
	assert.NoError(t, err)

	// Fresh salt per call, same plaintext must not repeat the digest.
	assert.NotEqual(t, first, second)
	assert.True(t, m.Verify("same-password", first))
	assert.True(t, m.Verify("same-password", second))
}

func TestCredentialManager_VerifyMalformedHash(t *testing.T) {
	m := NewCredentialManager()

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty hash", hash: ""},
		{name: "not a bcrypt hash", hash: "plaintext-stored-by-mistake"},
		{name: "truncated hash", hash: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, m.Verify("pw123", tt.hash))
		})
	}
}
