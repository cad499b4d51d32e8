package util

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("secret", "budget-plan", 42, "sess-1", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.SessionID != "sess-1" {
		t.Errorf("SessionID = %q, want sess-1", claims.SessionID)
	}
	if claims.Issuer != "budget-plan" {
		t.Errorf("Issuer = %q, want budget-plan", claims.Issuer)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", "budget-plan", 1, "sess-2", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("token signed with another secret should not parse")
	}
}

func TestParseToken_Expired(t *testing.T) {
	// GenerateToken treats ttl <= 0 as the 24h default, so build a
	// short-lived token and wait it out
	token, err := GenerateToken("secret", "budget-plan", 1, "sess-3", time.Millisecond)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := ParseToken("secret", token); err == nil {
		t.Error("expired token should not parse")
	}
}
