package utils

import (
	"strings"
	"testing"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashOwnerPassword(t *testing.T) {
	hash, err := HashOwnerPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, CheckOwnerPassword("correct horse", hash))
	assert.False(t, CheckOwnerPassword("wrong horse", hash))
	assert.False(t, CheckOwnerPassword("correct horse", "not-a-hash"))
}

func TestHashOwnerPassword_Rejected(t *testing.T) {
	_, err := HashOwnerPassword("short")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = HashOwnerPassword(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGenerateJWTSecret(t *testing.T) {
	a, err := GenerateJWTSecret(32)
	require.NoError(t, err)
	b, err := GenerateJWTSecret(32)
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)

	_, err = GenerateJWTSecret(MinJWTSecretBytes - 1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
