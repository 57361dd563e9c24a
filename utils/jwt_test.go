package utils

import (
	"testing"
	"time"
)

func TestCustomerJWTRoundTrip(t *testing.T) {
	token, err := GenerateCustomerJWT("shop-secret", "cust-9", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateCustomerJWT("shop-secret", token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.CustomerID != "cust-9" {
		t.Errorf("customer = %q, want cust-9", claims.CustomerID)
	}
}

func TestValidateCustomerJWTRejects(t *testing.T) {
	good, _ := GenerateCustomerJWT("shop-secret", "cust-9", time.Hour)
	expired, _ := GenerateCustomerJWT("shop-secret", "cust-9", -time.Minute)
	blank, _ := GenerateCustomerJWT("shop-secret", "", time.Hour)

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{name: "wrong secret", secret: "other", token: good},
		{name: "expired", secret: "shop-secret", token: expired},
		{name: "no customer", secret: "shop-secret", token: blank},
		{name: "garbage", secret: "shop-secret", token: "not.a.jwt"},
		{name: "no secret", secret: "", token: good},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateCustomerJWT(tt.secret, tt.token); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def", want: "abc.def"},
		{header: "", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer ", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ExtractTokenFromHeader(tt.header)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ExtractTokenFromHeader(%q) = %q, %v", tt.header, got, err)
		}
	}
}
