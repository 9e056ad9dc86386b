package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	manager := NewSessionManager()

	token, err := manager.GenerateSessionToken("user-1", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := manager.VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSessionToken_Unknown(t *testing.T) {
	manager := NewSessionManager()

	_, err := manager.VerifySessionToken("does-not-exist")
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionToken_Expired(t *testing.T) {
	manager := NewSessionManager()

	token, err := manager.GenerateSessionToken("user-1", -time.Second)
	require.NoError(t, err)

	_, err = manager.VerifySessionToken(token)
	assert.ErrorIs(t, err, ErrExpiredSessionToken)
}

func TestSessionToken_Delete(t *testing.T) {
	manager := NewSessionManager()

	token, err := manager.GenerateSessionToken("user-1", time.Minute)
	require.NoError(t, err)

	manager.DeleteSessionToken(token)

	_, err = manager.VerifySessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestCleanupExpired(t *testing.T) {
	manager := NewSessionManager()

	expired, err := manager.GenerateSessionToken("user-1", -time.Second)
	require.NoError(t, err)
	live, err := manager.GenerateSessionToken("user-2", time.Minute)
	require.NoError(t, err)

	manager.CleanupExpired()

	_, err = manager.VerifySessionToken(expired)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)

	userID, err := manager.VerifySessionToken(live)
	require.NoError(t, err)
	assert.Equal(t, "user-2", userID)
}
