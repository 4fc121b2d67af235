package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "farmguard/pkg/domainerrors"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-key", "farmguard", "farmguard-api")

	token, err := svc.GenerateAccessToken("subject-1", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "subject-1", claims.SubjectID)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "farmguard", claims.Issuer)
}

func TestValidate_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-key", "farmguard", "farmguard-api")
	token, err := svc.GenerateAccessToken("subject-1", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
}

func TestValidate_WrongKey(t *testing.T) {
	issuer := NewJWTService("key-a", "farmguard", "farmguard-api")
	verifier := NewJWTService("key-b", "farmguard", "farmguard-api")

	token, err := issuer.GenerateAccessToken("subject-1", time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
}

func TestValidate_Garbage(t *testing.T) {
	svc := NewJWTService("test-key", "farmguard", "farmguard-api")
	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
}

func TestMiddlewareAdapter(t *testing.T) {
	svc := NewJWTService("test-key", "farmguard", "farmguard-api")
	adapter := NewMiddlewareAdapter(svc)

	token, err := svc.GenerateAccessToken("subject-1", time.Hour)
	require.NoError(t, err)

	claims, err := adapter.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "subject-1", claims.SubjectID)
	assert.NotEmpty(t, claims.TokenID)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}
