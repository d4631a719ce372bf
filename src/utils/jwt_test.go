package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(secret, "admin-1", "admin@example.com", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseJWTRejects(t *testing.T) {
	expired, err := GenerateJWT(secret, "admin-1", "", "admin", -time.Minute)
	require.NoError(t, err)

	other, err := GenerateJWT([]byte("other"), "admin-1", "", "admin", time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"empty":        "",
		"garbage":      "not.a.token",
		"expired":      expired,
		"wrong secret": other,
		"alg none":     none,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseJWT(secret, tok)
			assert.Error(t, err)
		})
	}
}

func TestGenerateJWTEmptySecret(t *testing.T) {
	_, err := GenerateJWT(nil, "admin-1", "", "admin", time.Hour)
	assert.Error(t, err)
}
