package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims issued by the auth service. Older tokens carry user_id instead of userId.
type Claims struct {
	UserID       string `json:"userId,omitempty"`
	LegacyUserID string `json:"user_id,omitempty"`
	Role         string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ResolvedUserID resolves the user the token was issued for.
func (c *Claims) ResolvedUserID() string {
	switch {
	case c.UserID != "":
		return c.UserID
	case c.LegacyUserID != "":
		return c.LegacyUserID
	default:
		return c.RegisteredClaims.Subject
	}
}

type TokenVerifier struct {
	key []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{key: []byte(secret)}
}

func (v *TokenVerifier) CreateToken(userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.key)
}

func (v *TokenVerifier) ValidateToken(tokenString string) (*Claims, error) {
	if len(v.key) == 0 {
		return nil, fmt.Errorf("%w: signing key not configured", ErrUnauthenticated)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if !token.Valid {
		return nil, ErrUnauthenticated
	}
	if claims.ResolvedUserID() == "" {
		return nil, errors.Join(ErrUnauthenticated, errors.New("token has no user"))
	}

	return claims, nil
}
