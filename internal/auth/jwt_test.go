package auth

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	manager := NewJWTManager(testSecret, "khit-test", 15*time.Minute)

	token, err := manager.GenerateAccessToken("user-001", "customer")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, role, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if userID != "user-001" {
		t.Errorf("expected userID user-001, got %s", userID)
	}
	if role != "customer" {
		t.Errorf("expected role 'customer', got %q", role)
	}
}

func TestJWTManager_GenerateAndValidate_AdminRole(t *testing.T) {
	manager := NewJWTManager(testSecret, "khit-test", 15*time.Minute)

	token, err := manager.GenerateAccessToken("user-002", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, role, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if role != "admin" {
		t.Errorf("expected role 'admin', got %q", role)
	}
}

func TestJWTManager_ValidateAccessToken_Expired(t *testing.T) {
	manager := NewJWTManager(testSecret, "khit-test", -time.Minute)

	token, err := manager.GenerateAccessToken("user-001", "customer")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJWTManager_ValidateAccessToken_WrongSecret(t *testing.T) {
	manager := NewJWTManager(testSecret, "khit-test", 15*time.Minute)
	other := NewJWTManager("another-secret-at-least-32-chars-long!!", "khit-test", 15*time.Minute)

	token, err := manager.GenerateAccessToken("user-001", "customer")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestJWTManager_ValidateAccessToken_WrongIssuer(t *testing.T) {
	manager := NewJWTManager(testSecret, "khit-test", 15*time.Minute)
	other := NewJWTManager(testSecret, "someone-else", 15*time.Minute)

	token, err := manager.GenerateAccessToken("user-001", "customer")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for token with a different issuer")
	}
}

func TestJWTManager_ValidateAccessToken_Garbage(t *testing.T) {
	manager := NewJWTManager(testSecret, "khit-test", 15*time.Minute)

	for _, tok := range []string{"", "not.a.jwt", "aaaa"} {
		if _, _, err := manager.ValidateAccessToken(tok); err == nil {
			t.Errorf("expected error for token %q", tok)
		}
	}
}

func TestJWTManager_GenerateSessionToken(t *testing.T) {
	manager := NewJWTManager(testSecret, "khit-test", 15*time.Minute)

	a, err := manager.GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}
	b, err := manager.GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if a == b {
		t.Fatal("expected distinct session tokens")
	}
	if len(a) < 40 {
		t.Errorf("token %q shorter than expected", a)
	}
	if strings.ContainsAny(a, "+/=") {
		t.Errorf("token %q is not URL-safe", a)
	}
}
