package services

import (
	"strings"
	"testing"
	"time"
)

func TestAdminJWTRoundTrip(t *testing.T) {
	svc := &JWTService{secretKey: []byte("test-secret")}

	token, err := svc.GenerateAdminJWT("admin-1", "ops@navedhana.in", RoleAnalyst, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminJWT() error = %v", err)
	}
	claims, err := svc.VerifyAdminJWT(token)
	if err != nil {
		t.Fatalf("VerifyAdminJWT() error = %v", err)
	}
	if claims.AdminID != "admin-1" || claims.Role != RoleAnalyst {
		t.Errorf("claims = %+v", claims)
	}
}

func TestVerifyAdminJWT_Rejects(t *testing.T) {
	svc := &JWTService{secretKey: []byte("test-secret")}
	other := &JWTService{secretKey: []byte("other-secret")}

	customerRole, _ := svc.GenerateAdminJWT("u1", "u1@example.com", "customer", time.Hour)
	expired, _ := svc.GenerateAdminJWT("a1", "a1@example.com", RoleAdmin, -time.Minute)
	foreign, _ := other.GenerateAdminJWT("a1", "a1@example.com", RoleAdmin, time.Hour)

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"role not allowed", customerRole, "may not read analytics"},
		{"expired", expired, "expired"},
		{"wrong secret", foreign, "signature"},
		{"garbage", "not-a-jwt", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyAdminJWT(tt.token)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestInitJWTService(t *testing.T) {
	if err := InitJWTService(""); err == nil {
		t.Error("empty secret should be rejected")
	}
	if err := InitJWTService("s3cret"); err != nil || GetJWTService() == nil {
		t.Fatalf("InitJWTService() err=%v svc=%v", err, GetJWTService())
	}
}
