package auth

import (
	"testing"
	"time"

	"github.com/spec-kit/staffing-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", 30)

	token, expiresAt, err := tm.GenerateToken(42, domain.RoleRecruiter)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 29*time.Minute || remaining > 31*time.Minute {
		t.Fatalf("expiry outside configured ttl: %v", remaining)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("want uid 42, got %d", claims.UserID)
	}
	if claims.Role != domain.RoleRecruiter {
		t.Fatalf("want role recruiter, got %s", claims.Role)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 30)
	verifier := NewTokenManager("secret-b", 30)

	token, _, err := issuer.GenerateToken(1, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("token signed with different secret was accepted")
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", 30)
	if _, err := tm.ParseToken("not.a.token"); err == nil {
		t.Fatal("malformed token was accepted")
	}
}

func TestTokenManagerDefaultTTL(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", 0)
	_, expiresAt, err := tm.GenerateToken(7, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute {
		t.Fatalf("fallback ttl not applied: %v", remaining)
	}
}
