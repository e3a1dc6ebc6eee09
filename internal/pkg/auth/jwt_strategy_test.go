package auth

import (
	"testing"
	"time"
)

func TestJWTStrategyIssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})

	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestJWTStrategyRejectsGarbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestJWTStrategyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret-a", Options{})
	verifier := NewJWTStrategy("secret-b", Options{})

	token, err := issuer.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategyRejectsExpired(t *testing.T) {
	strategy := &JWTStrategy{secret: []byte("secret"), ttl: -time.Minute}

	token, err := strategy.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTStrategyName(t *testing.T) {
	if name := NewJWTStrategy("secret", Options{}).Name(); name != "jwt" {
		t.Fatalf("unexpected strategy name %q", name)
	}
}

func TestJWTStrategyDefaultTTL(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if strategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}
