package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"njia-admin/internal/token"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return s
}

func TestInspect(t *testing.T) {
	t.Parallel()
	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	raw := signed(t, jwt.MapClaims{
		"sub":   "17",
		"email": "staff@example.com",
		"iss":   "njia-backend",
		"exp":   exp.Unix(),
	})

	info, err := token.Inspect(raw)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if info.Subject != "17" || info.Email != "staff@example.com" || info.Issuer != "njia-backend" {
		t.Errorf("Inspect() = %+v", info)
	}
	if !info.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want %v", info.ExpiresAt, exp)
	}
	if info.Expired(time.Now()) {
		t.Error("future token reported expired")
	}
	if !info.Expired(exp.Add(time.Second)) {
		t.Error("past token not reported expired")
	}
}

func TestInspect_NoExpiry(t *testing.T) {
	t.Parallel()
	info, err := token.Inspect(signed(t, jwt.MapClaims{"sub": "1"}))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if info.Expired(time.Now()) {
		t.Error("token without exp reported expired")
	}
}

func TestInspect_Garbage(t *testing.T) {
	t.Parallel()
	if _, err := token.Inspect("not-a-jwt"); err == nil {
		t.Error("Inspect() of garbage succeeded")
	}
}
