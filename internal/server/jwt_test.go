package server

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
)

func testJWTService(expirationHours int) *JWTService {
	return NewJWTService(&config.AuthConfig{
		Secret:          "a-test-secret-that-is-long-enough",
		ExpirationHours: expirationHours,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := testJWTService(1)

	token, err := service.GenerateToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", claims.ClientID.String())
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_RejectsEmptyToken(t *testing.T) {
	_, err := testJWTService(1).ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	_, err := testJWTService(1).ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := testJWTService(1).GenerateToken()
	require.NoError(t, err)

	other := NewJWTService(&config.AuthConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	// Negative expiration creates a token that is already expired.
	token, err := testJWTService(-1).GenerateToken()
	require.NoError(t, err)

	_, err = testJWTService(-1).ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/roles", nil)
	_, err := extractBearerToken(r)
	assert.Error(t, err)

	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	_, err = extractBearerToken(r)
	assert.Error(t, err)

	r.Header.Set("Authorization", "Bearer some-token")
	token, err := extractBearerToken(r)
	require.NoError(t, err)
	assert.Equal(t, "some-token", token)
}
