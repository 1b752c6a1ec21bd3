package auth

import (
	"sync"

	"spotless/internal/domain"
)

// SessionStore maps issued tokens to logged-in users. Each login gets its
// own entry, so concurrent callers no longer clobber a shared slot. Entries
// never expire; the token's JWT expiry is advisory only.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.User
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*domain.User)}
}

func (s *SessionStore) Put(token string, u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = u
}

func (s *SessionStore) Get(token string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.sessions[token]
	return u, ok
}

func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
