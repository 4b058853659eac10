package auth

import (
	"testing"

	"heptabet_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("123456"))
	assert.ErrorIs(t, ValidatePassword("12345"), apperrors.ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword(""), apperrors.ErrWeakPassword)
}
