package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret-key-that-is-long-enough!", time.Hour)

	token, err := manager.GenerateToken("teacher-123", "teacher")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, role, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "teacher-123", subject)
	assert.Equal(t, "teacher", role)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("first-secret-key-that-is-long-enough", time.Hour)
	verifier := NewJWTManager("other-secret-key-that-is-long-enough", time.Hour)

	token, err := issuer.GenerateToken("parent-1", "parent")
	require.NoError(t, err)

	_, _, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	manager := NewJWTManager("test-secret-key-that-is-long-enough!", -time.Minute)

	token, err := manager.GenerateToken("teacher-123", "teacher")
	require.NoError(t, err)

	_, _, err = manager.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret-key-that-is-long-enough!", time.Hour)

	_, _, err := manager.VerifyToken("not-a-token")
	assert.Error(t, err)
}
