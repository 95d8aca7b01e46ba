package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	sessionCookieName = "yd_session"
	sessionDuration   = 24 * time.Hour
)

// Sessions is a thread-safe in-memory session store. Expired entries are
// pruned lazily on lookup, so no background goroutine is needed.
type Sessions struct {
	mu       sync.Mutex
	expiries map[string]time.Time
}

func NewSessions() *Sessions {
	return &Sessions{expiries: make(map[string]time.Time)}
}

// Create mints a new random session token.
func (s *Sessions) Create() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)

	s.mu.Lock()
	s.expiries[token] = time.Now().Add(sessionDuration)
	s.mu.Unlock()
	return token, nil
}

// Valid reports whether token is a live session, deleting it if expired.
func (s *Sessions) Valid(token string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline, ok := s.expiries[token]
	if !ok {
		return false
	}
	if time.Now().After(deadline) {
		delete(s.expiries, token)
		return false
	}
	return true
}

// Delete removes token from the store.
func (s *Sessions) Delete(token string) {
	s.mu.Lock()
	delete(s.expiries, token)
	s.mu.Unlock()
}

// CheckPassword verifies a submitted password against the stored credential.
// If stored starts with a bcrypt prefix it is treated as a hash; otherwise a
// plaintext comparison is used (development only — log a warning upstream).
func CheckPassword(stored, submitted string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
	}
	return stored == submitted
}

// HashPassword returns a bcrypt hash of password.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionDuration.Seconds()),
	})
}

func GetSessionToken(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
