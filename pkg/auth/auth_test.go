package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-catalog/pkg/database"
	"video-catalog/pkg/models"
)

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, database.Init("sqlite3", ":memory:"))
}

func TestHashPassword(t *testing.T) {
	digest := HashPassword("secret")
	// Deterministic hex sha-256, so login can match it exactly.
	assert.Equal(t, HashPassword("secret"), digest)
	assert.Len(t, digest, 64)
	assert.NotEqual(t, HashPassword("other"), digest)
}

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	require.NoError(t, err)
	b, err := NewToken()
	require.NoError(t, err)

	// 32 bytes of entropy, URL-safe base64 without padding.
	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "+")
	assert.NotContains(t, a, "/")
	assert.NotContains(t, a, "=")
}

func TestSessionRoundTrip(t *testing.T) {
	setupDB(t)
	user := &models.User{Username: "alice", PasswordHash: HashPassword("pw")}
	require.NoError(t, database.DB.Create(user).Error)

	session, err := StartSession(database.DB, user, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	got, err := SessionUser(database.DB, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
}

func TestSessionUserUnknownToken(t *testing.T) {
	setupDB(t)

	_, err := SessionUser(database.DB, "no-such-token")
	assert.Equal(t, ErrInvalidSession, err)
}

func TestSessionUserExpired(t *testing.T) {
	setupDB(t)
	user := &models.User{Username: "alice", PasswordHash: HashPassword("pw")}
	require.NoError(t, database.DB.Create(user).Error)

	session, err := StartSession(database.DB, user, -time.Minute)
	require.NoError(t, err)

	_, err = SessionUser(database.DB, session.Token)
	assert.Equal(t, ErrInvalidSession, err)
}

func TestSessionUserDeletedUser(t *testing.T) {
	setupDB(t)
	user := &models.User{Username: "alice", PasswordHash: HashPassword("pw")}
	require.NoError(t, database.DB.Create(user).Error)

	session, err := StartSession(database.DB, user, time.Hour)
	require.NoError(t, err)
	require.NoError(t, database.DB.Delete(user).Error)

	_, err = SessionUser(database.DB, session.Token)
	assert.Equal(t, ErrInvalidSession, err)
}
