package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, tokenID, expiresAt, err := svc.GenerateAccessToken("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenID)
	assert.Greater(t, expiresAt, time.Now().Unix())

	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)
	assert.Equal(t, "admin", parsed.Subject())
	assert.Equal(t, tokenID, parsed.JwtID())
	tokenType, _ := parsed.Get("type")
	assert.Equal(t, TokenTypeAccess, tokenType)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	assert.False(t, svc.IsTokenRevoked("abc"))
	svc.RevokeToken("abc", time.Now().Add(time.Hour).Unix())
	assert.True(t, svc.IsTokenRevoked("abc"))

	svc.RevokeToken("old", time.Now().Add(-time.Hour).Unix())
	svc.RevokeToken("new", time.Now().Add(time.Hour).Unix())
	assert.False(t, svc.IsTokenRevoked("old"))
	assert.True(t, svc.IsTokenRevoked("abc"))
}

func TestSSEToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, expiresIn, err := svc.GenerateSSEToken("admin", "session-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	username, sessionID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "session-1", sessionID)
}

func TestSSEToken_RequiresSession(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	_, _, err := svc.GenerateSSEToken("admin", "")
	assert.Error(t, err)
}

func TestValidateSSEToken_RejectsAfterLogout(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	_, tokenID, expiresAt, err := svc.GenerateAccessToken("admin")
	require.NoError(t, err)
	token, _, err := svc.GenerateSSEToken("admin", tokenID)
	require.NoError(t, err)

	svc.RevokeToken(tokenID, expiresAt)

	_, _, err = svc.ValidateSSEToken(token)
	assert.ErrorIs(t, err, ErrSessionRevoked)
}

func TestValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	access, _, _, err := svc.GenerateAccessToken("admin")
	require.NoError(t, err)

	_, _, err = svc.ValidateSSEToken(access)
	assert.Error(t, err)
}

func TestValidateSSEToken_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("one", time.Hour).GenerateSSEToken("admin", "session-1")
	require.NoError(t, err)

	_, _, err = NewJWTService("two", time.Hour).ValidateSSEToken(token)
	assert.Error(t, err)
}
