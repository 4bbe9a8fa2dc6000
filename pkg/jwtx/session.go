// Package jwtx issues and verifies the signed session tokens used by the
// checklist service. Tokens are HS256 JWTs carrying either a user id subject
// or the administrator flag.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, wrong issuer, expired or malformed tokens.
var ErrInvalidToken = errors.New("jwtx: invalid session token")

// SessionClaims are the claims embedded in a session token. Subject holds the
// user id for registered users and is empty for the administrator, where the
// adm claim is set instead. Absence of both means the token identifies nobody
// and verification rejects it.
type SessionClaims struct {
	Name  string `json:"name,omitempty"`
	Admin bool   `json:"adm,omitempty"`
	jwt.RegisteredClaims
}

// Signer signs and verifies session tokens with a single HMAC secret.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewSigner(secret []byte, issuer string, ttl time.Duration) *Signer {
	return &Signer{secret: secret, issuer: issuer, ttl: ttl}
}

// TTL returns the configured session lifetime, used by callers to align
// cookie expiry with token expiry.
func (s *Signer) TTL() time.Duration { return s.ttl }

// Sign issues a session token for the given identity.
func (s *Signer) Sign(subject, name string, admin bool) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		Name:  name,
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning its claims.
func (s *Signer) Verify(raw string) (SessionClaims, error) {
	var claims SessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return SessionClaims{}, ErrInvalidToken
	}
	if claims.Subject == "" && !claims.Admin {
		return SessionClaims{}, ErrInvalidToken
	}
	return claims, nil
}
