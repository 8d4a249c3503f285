package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"rentease-backend/domain"
)

// tokens expire 24 hours after issuance, there is no refresh mechanism
const tokenTTL = 24 * time.Hour

type Claims struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	UserRole domain.UserRole `json:"userRole"`
	jwt.RegisteredClaims
}

func CreateToken(user *domain.User, secret string) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		ID:       user.ID.Hex(),
		Email:    user.Email,
		Name:     user.Name,
		UserRole: user.UserRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
