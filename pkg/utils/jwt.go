package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the session lifetime; there is no refresh flow.
const TokenTTL = 24 * time.Hour

type Claims struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	FullName  string `json:"full_name"`
	jwt.RegisteredClaims
}

func CreateToken(secret string, accountID uuid.UUID, role, fullName string) (string, error) {
	claims := &Claims{
		AccountID: accountID.String(),
		Role:      role,
		FullName:  fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
