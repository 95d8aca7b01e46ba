package auth

import (
	"testing"
	"time"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSessions()

	token, err := s.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if !s.Valid(token) {
		t.Error("fresh token should be valid")
	}
	if s.Valid("") {
		t.Error("empty token should be invalid")
	}
	if s.Valid("bogus") {
		t.Error("unknown token should be invalid")
	}

	s.Delete(token)
	if s.Valid(token) {
		t.Error("deleted token should be invalid")
	}
}

func TestExpiredSessionPruned(t *testing.T) {
	s := NewSessions()
	token, err := s.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	s.mu.Lock()
	s.expiries[token] = time.Now().Add(-time.Minute)
	s.mu.Unlock()

	if s.Valid(token) {
		t.Error("expired token should be invalid")
	}
	s.mu.Lock()
	_, still := s.expiries[token]
	s.mu.Unlock()
	if still {
		t.Error("expired token should have been pruned on lookup")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "secret") {
		t.Error("correct password rejected against hash")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted against hash")
	}

	// Plaintext fallback for dev configs.
	if !CheckPassword("secret", "secret") {
		t.Error("plaintext match rejected")
	}
	if CheckPassword("secret", "wrong") {
		t.Error("plaintext mismatch accepted")
	}
}
