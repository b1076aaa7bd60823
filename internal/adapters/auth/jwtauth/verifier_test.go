package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_IssueAndVerify(t *testing.T) {
	v, err := NewVerifier("s3cret", "pet-events")
	require.NoError(t, err)

	tok, err := v.Issue("user-1", "u@x.io", time.Hour)
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "u@x.io", claims.Email)
}

func TestVerifier_Rejects(t *testing.T) {
	v, err := NewVerifier("s3cret", "pet-events")
	require.NoError(t, err)

	expired, err := v.Issue("user-1", "", -time.Minute)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewVerifier("otro", "pet-events")
	require.NoError(t, err)
	forged, err := other.Issue("user-1", "", time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	wrongIss, err := NewVerifier("s3cret", "someone-else")
	require.NoError(t, err)
	tok, err := wrongIss.Issue("user-1", "", time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = v.Verify(context.Background(), unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewVerifier(" ", "")
	assert.ErrorIs(t, err, ErrNoSecret)
}
