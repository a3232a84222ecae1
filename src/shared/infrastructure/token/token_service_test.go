package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceGenerateAndVerify(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	tokenString, err := service.Generate("900123456", "Ana")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := service.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "900123456", claims.NIT)
	assert.Equal(t, "Ana", claims.Nombre)
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	other := NewService("other-secret", time.Hour)

	tokenString, err := service.Generate("900123456", "Ana")
	require.NoError(t, err)

	_, err = other.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceRejectsExpiredToken(t *testing.T) {
	service := NewService("test-secret", -time.Minute)

	tokenString, err := service.Generate("900123456", "Ana")
	require.NoError(t, err)

	_, err = service.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	_, err := service.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
