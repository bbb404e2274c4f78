// Package jwt issues and verifies the signed bearer tokens used by the HTTP API.
// Tokens are HMAC-signed and carry the authenticated user's identity and role so
// authorization checks do not need a database round trip.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretIsRequired = errors.New("jwt: signing secret is required")
	ErrTokenIsInvalid   = errors.New("jwt: token is invalid")
)

// Claims extends the registered JWT claims with the application's own fields.
// Role is included so the role-based checks in handlers can run without
// loading the user first.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Generate creates a signed token for the given user. The subject is the user
// id; expiry is now plus expMinutes.
func Generate(secret, userID, email, role string, expMinutes int) (string, error) {
	if secret == "" {
		return "", ErrSecretIsRequired
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email: email,
		Role:  role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse verifies the token signature and expiry and returns its claims.
// Returns an error for expired tokens, bad signatures, and non-HMAC algorithms.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenIsInvalid
	}

	return claims, nil
}
