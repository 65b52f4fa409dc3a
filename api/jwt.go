package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTClaims struct {
	UserName string `json:"name,omitempty"`
	UserRole string `json:"user_role,omitempty"`

	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for the admin API.
func IssueToken(key []byte, name, role string, expire time.Duration) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserName: name,
		UserRole: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}
