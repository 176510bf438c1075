package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const lifetime = 7 * 24 * time.Hour

// Sign issues an HS256 token whose subject lives in a nested user.id claim,
// the shape the storefront client expects.
func Sign(userID uint, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user": map[string]interface{}{
			"id": userID,
		},
		"exp": time.Now().Add(lifetime).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// Parse validates a raw token and returns the embedded user id.
func Parse(raw string, secret []byte) (uint, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}
	if !t.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("cannot parse claims")
	}
	userRaw, ok := claims["user"].(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("missing user claim")
	}
	idRaw, ok := userRaw["id"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid user id claim")
	}

	return uint(idRaw), nil
}
