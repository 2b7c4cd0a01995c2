// Package token implements the access token contract shared by the user and
// todo services: HS256-signed JWTs carrying the account UUID and email, valid
// for a fixed window from issuance.
//
// Verification is a pure function of the token and the signing key. There is
// no revocation list and no per-request account lookup, so a token remains
// valid until expiry even if the account it names has since been deleted.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/todoboard/backend/internal/errs"
)

// AccessTTL is how long an issued token stays valid. Tokens are not
// renewable; clients log in again after expiry.
const AccessTTL = 24 * time.Hour

// Claims is the verified identity derived from a presented token.
type Claims struct {
	UserID uuid.UUID
	Email  string
}

type jwtClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer mints signed access tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer constructs an Issuer with the given signing key and token TTL.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Sign mints a token for the given account.
func (i *Issuer) Sign(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verifier parses and validates access tokens.
type Verifier struct {
	secret []byte
}

// NewVerifier constructs a Verifier with the given signing key.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Parse validates the token signature and expiry and returns the embedded
// claims. Any failure (bad signature, wrong method, expired, malformed)
// surfaces as errs.ErrUnauthenticated.
func (v *Verifier) Parse(tokenStr string) (*Claims, error) {
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrUnauthenticated
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errs.ErrUnauthenticated
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errs.ErrUnauthenticated
	}

	return &Claims{
		UserID: userID,
		Email:  claims.Email,
	}, nil
}
