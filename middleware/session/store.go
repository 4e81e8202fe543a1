package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned by a Store when no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// Session holds the state attached to a single WebSocket connection. Value
// access is safe from concurrent message handlers on the same connection.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time

	mu     sync.RWMutex
	values map[string]any
}

// NewSession creates a session with the given ID and time-to-live.
func NewSession(id string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		values:    map[string]any{},
	}
}

// Get returns the value stored under key. The second return value is false
// if the key doesn't exist.
func (s *Session) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Set stores a value under key.
func (s *Session) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Delete removes the value stored under key.
func (s *Session) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Values returns a copy of all values in the session.
func (s *Session) Values() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make(map[string]any, len(s.values))
	for key, value := range s.values {
		values[key] = value
	}
	return values
}

// Expired reports whether the session's time-to-live has elapsed.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store is the persistence interface for sessions. The package ships with
// MemoryStore; external backends implement the same interface and plug into
// Middleware unchanged.
type Store interface {
	// Get retrieves a session by its ID. Returns ErrNotFound if no session
	// exists or it has expired.
	Get(ctx context.Context, id string) (*Session, error)
	// Save persists a session.
	Save(ctx context.Context, session *Session) error
	// Delete removes a session. Deleting a session that doesn't exist is
	// not an error.
	Delete(ctx context.Context, id string) error
	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
	// Close releases any resources held by the store.
	Close() error
}

// MemoryStore keeps sessions in process memory. When created with a
// non-zero cleanup interval it sweeps expired sessions in the background
// until closed.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	stopChan chan struct{}
	stopOnce sync.Once
}

var _ Store = &MemoryStore{}

// NewMemoryStore creates an in-memory session store. A non-zero
// cleanupInterval starts a background sweep of expired sessions; pass zero
// to disable it and call Cleanup yourself.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		sessions: map[string]*Session{},
		stopChan: make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go store.cleanupLoop(cleanupInterval)
	}

	return store
}

func (s *MemoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = s.Cleanup(context.Background())
		case <-s.stopChan:
			return
		}
	}
}

// Get retrieves a session by its ID. Expired sessions are removed and
// reported as ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if session.Expired() {
		_ = s.Delete(ctx, id)
		return nil, ErrNotFound
	}
	return session, nil
}

// Save persists a session.
func (s *MemoryStore) Save(ctx context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

// Delete removes a session.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Cleanup removes all expired sessions.
func (s *MemoryStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.Expired() {
			delete(s.sessions, id)
		}
	}
	return nil
}

// Close stops the background cleanup sweep, if one is running.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	return nil
}

// Len returns the number of sessions currently in the store, including any
// that have expired but not yet been swept.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
