package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, expiresAt, err := svc.Generate("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.NotEmpty(t, claims.ID, "JTI must be set for revocation")
	assert.Equal(t, "vendor-hub", claims.Issuer)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	signed, _, err := NewService("secret-a", time.Hour).Generate("user-1")
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).Validate(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewService("secret", -time.Minute)
	signed, _, err := svc.Generate("user-1")
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewService("secret", time.Hour).Validate("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
