package cart

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"github.com/google/uuid"
)

type sessionMeta struct {
	CartID    string
	ExpiresAt time.Time
}

// SessionManager binds opaque bearer tokens to cart ids. One browser holds
// one token, which stands in for the durable per-browser storage the
// storefront used to key its cart on.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]sessionMeta
	ttl      time.Duration
}

func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]sessionMeta),
		ttl:      ttl,
	}
}

// Issue creates a fresh cart id and a token bound to it.
func (m *SessionManager) Issue() (token, cartID string, err error) {
	token, err = randomToken()
	if err != nil {
		return "", "", err
	}
	cartID = uuid.NewString()

	m.mu.Lock()
	m.sessions[token] = sessionMeta{
		CartID:    cartID,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	m.mu.Unlock()
	return token, cartID, nil
}

// Resolve returns the cart id bound to token, if the token is live. Expired
// tokens are evicted on touch.
func (m *SessionManager) Resolve(token string) (string, bool) {
	m.mu.RLock()
	meta, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(meta.ExpiresAt) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return "", false
	}
	return meta.CartID, true
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
