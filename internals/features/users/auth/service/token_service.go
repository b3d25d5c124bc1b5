package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"school_backend/internals/configs"
)

var ErrInvalidToken = errors.New("invalid token")

// CreateAccessToken issues an HS256 token carrying username + role.
func CreateAccessToken(username, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(configs.AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// ParseAccessToken verifies signature and expiry, returning username + role.
func ParseAccessToken(tokenString string) (username, role string, err error) {
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return "", "", ErrInvalidToken
	}

	username, _ = claims["username"].(string)
	role, _ = claims["role"].(string)
	if username == "" {
		return "", "", ErrInvalidToken
	}
	return username, role, nil
}
