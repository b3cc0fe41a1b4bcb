package inmem

import (
	"context"
	"sync"

	"eduportal/store"
)

// SessionStore keeps sessions in a map. Single-process only; used by
// tests and as a fallback when no Redis URL is configured.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]store.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]store.Session)}
}

func (s *SessionStore) Put(ctx context.Context, sess *store.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = *sess
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*store.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
