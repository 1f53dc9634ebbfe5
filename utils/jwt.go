package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity asserted by a token: the username plus the
// informational host flag.
type Claims struct {
	Username string `json:"username"`
	IsHost   bool   `json:"isHost"`
	jwt.RegisteredClaims
}

// jwtSecret is read per call, not at package init, so a JWT_SECRET loaded from
// .env during startup is honored.
func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-change-in-production"
	}
	return []byte(secret)
}

// GenerateToken signs a 24h HS256 token for the given identity.
func GenerateToken(username string, isHost bool) (string, error) {
	claims := &Claims{
		Username: username,
		IsHost:   isHost,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken verifies signature and expiry and returns the claims.
// Anything malformed, unsigned or expired fails closed.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Username == "" {
		return nil, errors.New("token missing username claim")
	}

	return claims, nil
}
