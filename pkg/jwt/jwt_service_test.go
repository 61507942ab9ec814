package jwt

import (
	"recipe-app/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateTokenUser("user-1")
	require.NoError(t, err)

	userID, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	session, err := svc.GetSessionByToken(token)
	require.NoError(t, err)
	assert.NotEmpty(t, session.TokenID)
	assert.WithinDuration(t, time.Now().Add(SessionDuration), session.ExpiresAt, 5*time.Second)
}

func TestUserTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret").GenerateTokenUser("user-1")
	require.NoError(t, err)

	_, err = NewJWTService("other").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = NewJWTService("secret").GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestUserTokenExpired(t *testing.T) {
	svc := NewJWTService("secret").(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }

	token, err := svc.GenerateTokenUser("user-1")
	require.NoError(t, err)

	_, err = svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestForgetPasswordToken(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateTokenForgetPassword(map[string]any{"email": "a@example.com", "purpose": "reset"}, 15*time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateTokenForgetPassword(token)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", claims["email"])
	assert.Equal(t, "reset", claims["purpose"])

	expired, err := svc.GenerateTokenForgetPassword(map[string]any{"email": "a@example.com"}, -time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateTokenForgetPassword(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
