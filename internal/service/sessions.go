package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"vocabox/internal/domain"
)

// SessionStore keeps in-flight review sessions in memory
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*domain.Session)}
}

// Create registers a new session for userID over candidates
func (s *SessionStore) Create(userID int64, mode domain.Mode, candidates []domain.Candidate, now time.Time) *domain.Session {
	session := domain.NewSession(uuid.NewString(), userID, mode, candidates, now)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get returns the session with id or domain.ErrNotFound
func (s *SessionStore) Get(id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

// Delete drops a session
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// DeleteForUser drops every session of userID and returns how many were dropped
func (s *SessionStore) DeleteForUser(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of held sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Expire drops sessions idle for longer than ttl and returns how many were dropped
func (s *SessionStore) Expire(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for id, session := range s.sessions {
		if now.Sub(session.TouchedAt()) > ttl {
			delete(s.sessions, id)
			expired++
		}
	}
	return expired
}
