package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "navedhana-auth"

// Admin roles allowed onto the analytics surface
const (
	RoleAdmin   = "admin"
	RoleAnalyst = "analyst"
)

// AdminJWTClaims are issued by the auth service and only verified here
type AdminJWTClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey []byte
}

var (
	jwtMu      sync.RWMutex
	jwtService *JWTService
)

// InitJWTService installs the shared verifier
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtMu.Lock()
	defer jwtMu.Unlock()
	jwtService = &JWTService{secretKey: []byte(secretKey)}
	return nil
}

func GetJWTService() *JWTService {
	jwtMu.RLock()
	defer jwtMu.RUnlock()
	return jwtService
}

// GenerateAdminJWT signs a token; used by the seeder and tests to mint dev tokens
func (j *JWTService) GenerateAdminJWT(adminID, email, role string, ttl time.Duration) (string, error) {
	if adminID == "" || email == "" {
		return "", errors.New("adminID and email cannot be empty")
	}
	now := time.Now()
	claims := AdminJWTClaims{
		AdminID: adminID,
		Email:   email,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyAdminJWT parses the token and checks signature, expiry, issuer and role
func (j *JWTService) VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	claims := &AdminJWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.AdminID == "" {
		return nil, errors.New("token missing admin id")
	}
	if claims.Role != RoleAdmin && claims.Role != RoleAnalyst {
		return nil, fmt.Errorf("role %q may not read analytics", claims.Role)
	}
	return claims, nil
}
