package chat

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"healthmate-server/internal/models"
)

// greeting seeds every new transcript.
const greeting = "Hi! I'm HealthMate. Ask me about your medicines. I can explain usage, side effects, and precautions."

var (
	// ErrReplyPending is returned when a second send is attempted while a
	// reply is still outstanding.
	ErrReplyPending = errors.New("a reply is already pending for this session")

	// ErrSessionNotFound is returned when a chat session ID is unknown or
	// expired.
	ErrSessionNotFound = errors.New("chat session not found")
)

// Session holds one chatbot conversation: an append-only ordered transcript
// and the reply-language flag. Messages are never edited or removed; the
// whole session is discarded on teardown.
type Session struct {
	mu sync.Mutex

	id         string
	language   models.Language
	transcript []models.ChatMessage
	pending    bool
}

// NewSession creates a session seeded with the assistant greeting.
func NewSession(id string) *Session {
	return &Session{
		id:         id,
		language:   models.LanguageEnglish,
		transcript: []models.ChatMessage{{Role: models.ChatRoleAssistant, Content: greeting}},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Language returns the current reply-language flag.
func (s *Session) Language() models.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage updates the reply-language flag, either from a user toggle or
// from upstream language detection.
func (s *Session) SetLanguage(lang models.Language) {
	if !lang.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

// BeginSend appends the user message and reserves the single outstanding
// reply slot. Sends are strictly sequential per session.
func (s *Session) BeginSend(content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return ErrReplyPending
	}
	s.pending = true
	s.transcript = append(s.transcript, models.ChatMessage{
		Role:    models.ChatRoleUser,
		Content: content,
	})
	return nil
}

// CompleteSend appends the assistant reply and releases the slot.
func (s *Session) CompleteSend(reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	s.transcript = append(s.transcript, models.ChatMessage{
		Role:    models.ChatRoleAssistant,
		Content: reply,
	})
}

// FailSend releases the reply slot after a failed round-trip. The user
// message stays in the transcript; the user may retry.
func (s *Session) FailSend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
}

// Transcript returns a copy of the ordered message history.
func (s *Session) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Store owns the in-memory chat session registry, keyed by UUID with an
// idle TTL. Nothing is persisted.
type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewStore creates a chat session store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Create registers a new session under a fresh UUID.
func (st *Store) Create() *Session {
	id := uuid.New().String()
	session := NewSession(id)
	st.cache.Set(id, session, st.ttl)
	return session
}

// Get returns the session for the given ID, refreshing its TTL.
func (st *Store) Get(id string) (*Session, error) {
	v, ok := st.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session := v.(*Session)
	st.cache.Set(id, session, st.ttl)
	return session, nil
}
