package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const DefaultTokenExpiry = 24 * time.Hour

type JWTService interface {
	GenerateJWT(userID string, role string) (string, error)
	ParseJWT(tokenStr string) (string, string, error)
}

type jwtService struct {
	jwtSecret   []byte
	tokenExpiry time.Duration
}

func NewJWTService(secret string, expiry time.Duration) JWTService {
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	return &jwtService{
		jwtSecret:   []byte(secret),
		tokenExpiry: expiry,
	}
}

func (j *jwtService) GenerateJWT(userID string, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"typ":  "access",
		"exp":  now.Add(j.tokenExpiry).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.jwtSecret)
}

// ParseJWT returns the user id and role carried by a valid access token.
func (j *jwtService) ParseJWT(tokenStr string) (string, string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return j.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("invalid or expired token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "access" {
		return "", "", errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", "", errors.New("invalid 'sub' claim")
	}
	role, _ := claims["role"].(string)
	return sub, role, nil
}
