package jwt

import (
	"testing"
	"time"

	"mediconnect/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(accessExpiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: time.Hour,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(time.Minute)

	token, tokenID, err := svc.GenerateAccessToken("admin@mediconnect.test", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@mediconnect.test", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)

	refresh, refreshID, err := svc.GenerateRefreshToken("admin@mediconnect.test", RoleAdmin)
	require.NoError(t, err)
	assert.NotEqual(t, tokenID, refreshID)

	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	token, _, err := newTestService(time.Minute).GenerateAccessToken("admin@mediconnect.test", RoleAdmin)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "another-secret", AccessExpiry: time.Minute})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateAccessToken("admin@mediconnect.test", RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
