package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gobcrypt "golang.org/x/crypto/bcrypt"
)

func TestHashIsSalted(t *testing.T) {
	h := NewHasher(gobcrypt.MinCost)

	first, err := h.Hash("secret1")
	require.NoError(t, err)
	second, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ")
	assert.True(t, h.Verify("secret1", first))
	assert.True(t, h.Verify("secret1", second))
}

func TestVerifyWrongPassword(t *testing.T) {
	h := NewHasher(gobcrypt.MinCost)

	digest, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.False(t, h.Verify("secret2", digest))
}

func TestVerifyMalformedDigest(t *testing.T) {
	h := NewHasher(gobcrypt.MinCost)

	assert.False(t, h.Verify("secret1", ""))
	assert.False(t, h.Verify("secret1", "not-a-bcrypt-digest"))
}

func TestNewHasherClampsInvalidCost(t *testing.T) {
	h := NewHasher(1000)

	digest, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.True(t, h.Verify("secret1", digest))
}
