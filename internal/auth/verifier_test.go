package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestStaticVerifierPlaintext(t *testing.T) {
	v := NewStaticVerifier("admin", "sesame42", "", 4)

	assert.True(t, v.Verify("admin", "sesame42"))
	assert.False(t, v.Verify("admin", "wrong"))
	assert.False(t, v.Verify("root", "sesame42"))
}

func TestStaticVerifierHashPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashedpass"), 4)
	require.NoError(t, err)

	// hash wins even when a different plaintext is configured
	v := NewStaticVerifier("admin", "plainpass", string(hash), 4)
	assert.True(t, v.Verify("admin", "hashedpass"))
	assert.False(t, v.Verify("admin", "plainpass"))
}

func TestStaticVerifierUpdate(t *testing.T) {
	v := NewStaticVerifier("admin", "oldpass", "", 4)
	require.NoError(t, v.Update("newpass"))

	assert.False(t, v.Verify("admin", "oldpass"))
	assert.True(t, v.Verify("admin", "newpass"))
}
