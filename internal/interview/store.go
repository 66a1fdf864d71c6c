package interview

import (
	"sync"
	"time"
)

// Store keeps active sessions in memory keyed by session id, with TTL so
// abandoned interviews do not pile up. No persistence: a session lives only
// for the duration of one interactive run.
type Store struct {
	sessions map[string]*storeEntry
	mu       sync.RWMutex
	ttl      time.Duration
}

type storeEntry struct {
	session   *Session
	expiresAt time.Time
}

// NewStore creates a session store with the specified TTL
func NewStore(ttl time.Duration) *Store {
	st := &Store{
		sessions: make(map[string]*storeEntry),
		ttl:      ttl,
	}

	// Start background cleanup goroutine
	go st.cleanupLoop()

	return st
}

// Put stores a session, resetting its TTL
func (st *Store) Put(session *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sessions[session.ID] = &storeEntry{
		session:   session,
		expiresAt: time.Now().Add(st.ttl),
	}
}

// Get retrieves a session if it exists and hasn't expired
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	entry, exists := st.sessions[id]
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.session, true
}

// Delete ends a session. Deleting an unknown id is a no-op, which makes
// finishing an interview idempotent.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, id)
}

// Len reports the number of stored sessions, expired ones included.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.sessions)
}

// cleanupLoop runs periodically to remove expired entries
func (st *Store) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		st.cleanup()
	}
}

func (st *Store) cleanup() {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	for id, entry := range st.sessions {
		if now.After(entry.expiresAt) {
			delete(st.sessions, id)
		}
	}
}
