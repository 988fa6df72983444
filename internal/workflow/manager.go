package workflow

import (
	"errors"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = errors.New("workflow session not found")

// Manager owns the in-memory workflow session store. Sessions live for the
// configured TTL, refreshed on access; nothing is ever persisted.
type Manager struct {
	store *gocache.Cache
	ttl   time.Duration
}

// NewManager creates a session store with the given idle TTL.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Create registers a new session under a fresh UUID.
func (m *Manager) Create() *Session {
	id := uuid.New().String()
	session := NewSession(id)
	m.store.Set(id, session, m.ttl)
	return session
}

// Get returns the session for the given ID, refreshing its TTL.
func (m *Manager) Get(id string) (*Session, error) {
	v, ok := m.store.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session := v.(*Session)
	m.store.Set(id, session, m.ttl)
	return session, nil
}

// Delete removes a session immediately.
func (m *Manager) Delete(id string) {
	m.store.Delete(id)
}
