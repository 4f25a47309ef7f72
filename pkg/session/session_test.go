package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteflow/pkg/models"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestCurrentOwnerID(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub": "uid-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	owner, err := NewSession(token).CurrentOwnerID()

	require.NoError(t, err)
	assert.Equal(t, "uid-123", owner)
}

func TestCurrentOwnerIDExpiredToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub": "uid-123",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := NewSession(token).CurrentOwnerID()
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestCurrentOwnerIDMissingExpiry(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "uid-123"})

	_, err := NewSession(token).CurrentOwnerID()
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestCurrentOwnerIDMissingSubject(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := NewSession(token).CurrentOwnerID()
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestCurrentOwnerIDNoToken(t *testing.T) {
	_, err := NewSession("").CurrentOwnerID()
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	_, err = NewSession("not-a-jwt").CurrentOwnerID()
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestAuthenticated(t *testing.T) {
	valid := signedToken(t, jwt.MapClaims{
		"sub": "uid-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	assert.True(t, NewSession(valid).Authenticated())
	assert.False(t, NewSession("").Authenticated())
}
