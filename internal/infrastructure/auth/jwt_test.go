package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	service := NewJWTService("test-secret", 15)

	token, expiresIn, err := service.Generate(10, "student")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(15*60), expiresIn)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(10), claims.UserID)
	assert.Equal(t, "student", claims.Role)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", 15)
	verifier := NewJWTService("secret-b", 15)

	token, _, err := issuer.Generate(10, "student")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	service := NewJWTService("test-secret", 15)

	_, err := service.Verify("not-a-token")
	assert.Error(t, err)
}
