package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/todoboard/backend/internal/errs"
)

func TestSignAndParse(t *testing.T) {
	userID := uuid.New()
	issuer := NewIssuer("test-secret", AccessTTL)

	signed, err := issuer.Sign(userID, "a@example.com")
	require.NoError(t, err)

	claims, err := NewVerifier("test-secret").Parse(signed)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "a@example.com", claims.Email)
}

func TestParseExpired(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)
	signed, err := issuer.Sign(uuid.New(), "a@example.com")
	require.NoError(t, err)

	_, err = NewVerifier("test-secret").Parse(signed)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestParseWrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", AccessTTL)
	signed, err := issuer.Sign(uuid.New(), "a@example.com")
	require.NoError(t, err)

	_, err = NewVerifier("other-secret").Parse(signed)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestParseMalformed(t *testing.T) {
	v := NewVerifier("test-secret")
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := v.Parse(tok)
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	}
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	claims := jwtClaims{
		Email: "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewVerifier("test-secret").Parse(unsigned)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestParseRejectsNonUUIDSubject(t *testing.T) {
	claims := jwtClaims{
		Email: "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewVerifier("test-secret").Parse(signed)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}
