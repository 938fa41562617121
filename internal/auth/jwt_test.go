package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer("test-secret-key-that-is-long-enough", time.Hour)

	token, expiresAt, err := issuer.Issue(1, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret-key-that-is-long-enough", time.Hour)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return base }
	token, _, err := issuer.Issue(1, "admin")
	require.NoError(t, err)

	issuer.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, err = issuer.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret-key-that-is-long-enough", time.Hour)
	other := NewTokenIssuer("a-completely-different-secret-key!!", time.Hour)

	token, _, err := issuer.Issue(1, "admin")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret-key-that-is-long-enough", time.Hour)
	_, err := issuer.Validate("not.a.token")
	assert.Error(t, err)
}
