package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	secret := []byte("test_secret")

	raw, err := Sign(17, secret)
	require.NoError(t, err)

	userID, err := Parse(raw, secret)
	require.NoError(t, err)
	require.Equal(t, uint(17), userID)
}

func TestParseWrongSecret(t *testing.T) {
	raw, err := Sign(17, []byte("one_secret"))
	require.NoError(t, err)

	_, err = Parse(raw, []byte("another_secret"))
	require.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("not-a-token", []byte("test_secret"))
	require.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	secret := []byte("test_secret")
	claims := jwt.MapClaims{
		"user": map[string]interface{}{"id": 17},
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = Parse(raw, secret)
	require.Error(t, err)
}

func TestParseMissingUserClaim(t *testing.T) {
	secret := []byte("test_secret")
	claims := jwt.MapClaims{
		"sub": 17,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = Parse(raw, secret)
	require.Error(t, err)
}
