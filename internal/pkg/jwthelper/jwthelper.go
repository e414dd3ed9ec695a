package jwthelper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims is the content of the admin session cookie. There is a single
// shared admin identity, so the token only says that its holder logged in.
type SessionClaims struct {
	LoggedIn bool `json:"logged_in"`
	jwt.RegisteredClaims
}

func GenerateSessionToken(signingKey string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		LoggedIn: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signingKey))
	if err != nil {
		return "", fmt.Errorf("token.SignedString -> %w", err)
	}

	return signed, nil
}

func ValidateSessionToken(signingKey, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(signingKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !token.Valid || !claims.LoggedIn {
		return nil, ErrInvalidSession
	}

	return claims, nil
}
