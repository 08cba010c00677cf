package auth

import (
	"testing"
	"time"
)

func TestJWTHandlerGenerateValidate(t *testing.T) {
	h, err := MakeJWTHandler([]byte("supersecretkey123"), time.Minute)
	if err != nil {
		t.Fatalf("make handler err: %v", err)
	}

	token, expiresAt, err := h.Generate("admin")
	if err != nil {
		t.Fatalf("generate token err: %v", err)
	}

	if time.Until(expiresAt) > time.Minute || time.Until(expiresAt) <= 0 {
		t.Fatalf("unexpected expiry %v", expiresAt)
	}

	claims, err := h.Validate(token)
	if err != nil {
		t.Fatalf("validate token err: %v", err)
	}

	if claims.Username != "admin" {
		t.Fatalf("expected admin got %s", claims.Username)
	}
}

func TestJWTHandlerRejectsBadInput(t *testing.T) {
	if _, err := MakeJWTHandler([]byte("short"), time.Minute); err == nil {
		t.Fatalf("expected short secret error")
	}

	if _, err := MakeJWTHandler([]byte("anothersecretkey"), 0); err == nil {
		t.Fatalf("expected ttl error")
	}

	h, _ := MakeJWTHandler([]byte("anothersecretkey"), time.Minute)

	if _, err := h.Validate("invalid.token"); err == nil {
		t.Fatalf("expected error for invalid token")
	}

	if _, _, err := h.Generate(""); err == nil {
		t.Fatalf("expected error for empty username")
	}
}

func TestJWTHandlerRejectsForeignAndExpiredTokens(t *testing.T) {
	h, _ := MakeJWTHandler([]byte("first-secret-key-0000"), time.Minute)
	other, _ := MakeJWTHandler([]byte("second-secret-key-000"), time.Minute)

	token, _, _ := other.Generate("admin")
	if _, err := h.Validate(token); err == nil {
		t.Fatalf("expected signature error")
	}

	h.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, _ := h.Generate("admin")
	h.now = time.Now

	if _, err := h.Validate(old); err == nil {
		t.Fatalf("expected expired token error")
	}
}
