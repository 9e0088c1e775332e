package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	signed, expiresAt, err := GenerateToken("api", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expiresAt %v is in the past", expiresAt)
	}

	claims, err := ParseToken(signed, secret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.ClientID != "api" {
		t.Errorf("ClientID = %q, want %q", claims.ClientID, "api")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	signed, _, err := GenerateToken("api", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(signed, "wrong-secret"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	signed, _, err := GenerateToken("api", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(signed, "secret"); err == nil {
		t.Error("expected error for expired token")
	}
}
