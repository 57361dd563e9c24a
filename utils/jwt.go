package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const customerIssuer = "navedhana-storefront"

// CustomerClaims is the payload of the storefront's customer tokens
type CustomerClaims struct {
	CustomerID string `json:"customerId"`
	jwt.RegisteredClaims
}

// GenerateCustomerJWT signs a customer token; the storefront does this in production
func GenerateCustomerJWT(secret, customerID string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("storefront secret not configured")
	}
	now := time.Now()
	claims := CustomerClaims{
		CustomerID: customerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    customerIssuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ValidateCustomerJWT verifies and parses a customer token
func ValidateCustomerJWT(secret, tokenString string) (*CustomerClaims, error) {
	if secret == "" {
		return nil, errors.New("storefront secret not configured")
	}

	claims := &CustomerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(customerIssuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.CustomerID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ExtractTokenFromHeader extracts the token from "Bearer <token>"
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is empty")
	}

	const bearerPrefix = "Bearer "
	if len(authHeader) < len(bearerPrefix) || authHeader[:len(bearerPrefix)] != bearerPrefix {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", errors.New("token is empty")
	}
	return token, nil
}
