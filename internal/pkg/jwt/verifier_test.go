package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, c Claims) string {
	t.Helper()
	s, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func claims(userID uuid.UUID, typ string, exp time.Time) Claims {
	return Claims{
		UserID:    userID,
		TokenType: typ,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwtlib.NewNumericDate(exp),
		},
	}
}

func TestHMACVerifier(t *testing.T) {
	v := NewHMACVerifier("secret")
	id := uuid.New()
	future := time.Now().Add(time.Hour)

	got, err := v.ValidateAccessToken(sign(t, "secret", claims(id, TokenTypeAccess, future)))
	require.NoError(t, err)
	assert.Equal(t, id, got.UserID)

	_, err = v.ValidateAccessToken(sign(t, "secret", claims(id, TokenTypeAccess, time.Now().Add(-time.Minute))))
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = v.ValidateAccessToken(sign(t, "secret", claims(id, TokenTypeRefresh, future)))
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = v.ValidateAccessToken(sign(t, "other", claims(id, TokenTypeAccess, future)))
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = v.ValidateAccessToken(sign(t, "secret", claims(uuid.Nil, TokenTypeAccess, future)))
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = v.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
