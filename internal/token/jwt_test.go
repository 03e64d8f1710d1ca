package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	tokenString, err := j.Generate(42, "a@b.c")
	require.NoError(t, err)

	payload, err := j.Parse(tokenString)
	require.NoError(t, err)
	require.Equal(t, int64(42), payload.UserID)
	require.Equal(t, "a@b.c", payload.Email)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	other := NewJWT("other", time.Hour)

	tokenString, err := j.Generate(42, "a@b.c")
	require.NoError(t, err)

	_, err = other.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_Expired(t *testing.T) {
	j := &JWT{secretKey: "secret", ttl: -time.Minute}

	tokenString, err := j.Generate(42, "a@b.c")
	require.NoError(t, err)

	_, err = j.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	_, err := j.Parse("not-a-token")
	require.Error(t, err)
}

func TestJWT_MissingClaims(t *testing.T) {
	now := time.Now()
	sign := func(claims jwt.Claims) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		s, err := tok.SignedString([]byte("secret"))
		require.NoError(t, err)
		return s
	}

	j := NewJWT("secret", time.Hour)

	missingUserID := sign(jwt.MapClaims{
		"email": "a@b.c",
		"exp":   now.Add(time.Hour).Unix(),
	})
	_, err := j.Parse(missingUserID)
	require.Error(t, err)

	missingEmail := sign(jwt.MapClaims{
		"user_id": 42,
		"exp":     now.Add(time.Hour).Unix(),
	})
	_, err = j.Parse(missingEmail)
	require.Error(t, err)

	mistypedUserID := sign(jwt.MapClaims{
		"user_id": "forty-two",
		"email":   "a@b.c",
		"exp":     now.Add(time.Hour).Unix(),
	})
	_, err = j.Parse(mistypedUserID)
	require.Error(t, err)
}

func TestNewJWT_DefaultTTL(t *testing.T) {
	j := NewJWT("secret", 0)

	tokenString, err := j.Generate(1, "a@b.c")
	require.NoError(t, err)
	_, err = j.Parse(tokenString)
	require.NoError(t, err)
}
