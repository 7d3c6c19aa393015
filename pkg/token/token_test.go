package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-for-unit-tests"

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	userID := uuid.New()

	signed, expiresAt, err := issuer.Issue(userID, "jane@example.com", []string{"admin", "user"})
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := issuer.Verify(signed)
	require.NoError(t, err)

	gotID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, []string{"admin", "user"}, claims.Roles)
}

func TestVerifyExpired(t *testing.T) {
	issuer := NewIssuer(testSecret, -time.Minute)

	signed, _, err := issuer.Issue(uuid.New(), "jane@example.com", []string{"user"})
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrExpired)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	other := NewIssuer("some-other-secret", time.Hour)

	signed, _, err := issuer.Issue(uuid.New(), "jane@example.com", []string{"user"})
	require.NoError(t, err)

	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	_, err := issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalid)
}
