package utils

import (
	"errors"
	"fmt"

	"pawbook/config"

	"github.com/golang-jwt/jwt"
)

// Staff tokens are minted by the account service; this side only verifies them.

// StaffClaims carries the identity fields the calendar surface cares about.
type StaffClaims struct {
	StaffID string
	Role    string
}

// ParseStaffToken verifies a staff JWT and extracts the subject and role claims.
func ParseStaffToken(tokenString string) (*StaffClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return nil, errors.New("token missing subject")
	}

	return &StaffClaims{StaffID: sub, Role: role}, nil
}
