package helpers

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, exp, err := m.GenerateSessionToken("sid-1", "ana@example.com", "Administrador")
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expected expiry in the future, got %v", exp)
	}

	claims, err := m.ParseSessionToken(token)
	if err != nil {
		t.Fatalf("ParseSessionToken returned error: %v", err)
	}
	if claims.SessionID != "sid-1" || claims.Email != "ana@example.com" || claims.Role != "Administrador" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTManager_Expired(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	m := NewJWTManager("secret", time.Minute).WithClock(func() time.Time { return now })

	token, _, err := m.GenerateSessionToken("sid-2", "bob@example.com", "Usuario")
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}

	now = now.Add(2 * time.Minute)
	_, err = m.ParseSessionToken(token)
	if !errors.Is(err, ErrInvalidSessionToken) {
		t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired in chain, got %v", err)
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, _, err := NewJWTManager("secret", time.Hour).GenerateSessionToken("sid-3", "c@example.com", "Usuario")
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}
	if _, err := NewJWTManager("other", time.Hour).ParseSessionToken(token); !errors.Is(err, ErrInvalidSessionToken) {
		t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
	}
}

func TestJWTManager_NoExpiry(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	m := NewJWTManager("secret", 0).WithClock(func() time.Time { return now })

	token, exp, err := m.GenerateSessionToken("sid-1", "ana@example.com", "Usuario")
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}
	if !exp.IsZero() {
		t.Fatalf("expected zero expiry, got %v", exp)
	}

	now = now.Add(365 * 24 * time.Hour)
	claims, err := m.ParseSessionToken(token)
	if err != nil {
		t.Fatalf("ParseSessionToken returned error: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no exp claim, got %v", claims.ExpiresAt)
	}
}
