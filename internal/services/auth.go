// Package services holds the auth gate: a single static admin credential
// pair checked against configuration, exchanged for a signed token.
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/DeckDev-RC/hubapps/internal/config"
)

// ErrInvalidCredentials is returned for any wrong email or password. Callers
// must not distinguish which half failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenTTL is the fixed lifetime of an admin token. There is no refresh and
// no revocation.
const TokenTTL = 8 * time.Hour

type AdminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Login checks the credentials against the configured admin identity and
// returns a signed token on success. The email comparison is trimmed and
// case-insensitive; the password is checked against the configured bcrypt
// hash.
func Login(email, password string) (string, error) {
	sanitized := strings.ToLower(strings.TrimSpace(email))
	admin := strings.ToLower(strings.TrimSpace(config.Current.AdminEmail))
	if sanitized == "" || sanitized != admin {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(config.Current.AdminPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return GenerateAdminToken(sanitized)
}

func GenerateAdminToken(email string) (string, error) {
	claims := AdminClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Current.JWTSecret))
}

// ParseToken validates signature and expiry and returns the claims.
func ParseToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.Current.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
