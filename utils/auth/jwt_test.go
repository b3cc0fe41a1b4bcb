package auth

import (
	"errors"
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager(JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
		Issuer: "eduportal-test",
	})

	token, err := manager.GenerateSessionToken("sess-key", "user-1", "alice", "student")
	if err != nil {
		t.Fatalf("GenerateSessionToken() failed: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}

	if claims.SessionKey() != "sess-key" {
		t.Errorf("SessionKey() = %q, want %q", claims.SessionKey(), "sess-key")
	}
	if claims.UserID != "user-1" || claims.Username != "alice" || claims.Role != "student" {
		t.Errorf("claims = %+v, want the issued identity", claims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTManager(JWTConfig{Secret: "secret-a", Expiry: time.Hour})
	verifier := NewJWTManager(JWTConfig{Secret: "secret-b", Expiry: time.Hour})

	token, err := issuer.GenerateSessionToken("k", "u", "n", "student")
	if err != nil {
		t.Fatalf("GenerateSessionToken() failed: %v", err)
	}

	if _, err := verifier.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	manager := NewJWTManager(JWTConfig{Secret: "s", Expiry: -time.Minute})

	token, err := manager.GenerateSessionToken("k", "u", "n", "student")
	if err != nil {
		t.Fatalf("GenerateSessionToken() failed: %v", err)
	}

	if _, err := manager.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := NewJWTManager(JWTConfig{Secret: "s", Expiry: time.Hour})

	if _, err := manager.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}
