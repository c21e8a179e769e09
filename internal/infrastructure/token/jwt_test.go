package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", 3600)

	signed, err := svc.Issue("user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	issuer := NewService("one-secret", 3600)
	verifier := NewService("another-secret", 3600)

	signed, err := issuer.Issue("user@example.com")
	assert.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewService("test-secret", -60)

	signed, err := svc.Issue("user@example.com")
	assert.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewService("test-secret", 3600)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}
