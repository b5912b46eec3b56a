package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	ok, err := h.Verify("s3cret-pass", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Verify("whatever", "not-a-bcrypt-hash")
	assert.Error(t, err)
}

func TestNewPasswordHasher_DefaultsInvalidCost(t *testing.T) {
	assert.Equal(t, DefaultBcryptCost, NewPasswordHasher(0).Cost)
	assert.Equal(t, DefaultBcryptCost, NewPasswordHasher(99).Cost)
	assert.Equal(t, 10, NewPasswordHasher(10).Cost)
}
