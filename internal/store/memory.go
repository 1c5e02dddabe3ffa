package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/aaronzipp/classroom-arcade/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore manages session storage
type SessionStore struct {
	sessions map[string]*models.Session
	mu       sync.RWMutex
}

// NewSessionStore creates a new session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.Session),
	}
}

// Get retrieves a session by ID
func (s *SessionStore) Get(id string) (*models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[id]
	return session, exists
}

// MustGet retrieves a session by ID or returns ErrSessionNotFound
func (s *SessionStore) MustGet(id string) (*models.Session, error) {
	session, exists := s.Get(id)
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Set stores a session under its ID
func (s *SessionStore) Set(session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

// Delete removes a session
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// NameTaken checks if any session already uses the display name
func (s *SessionStore) NameTaken(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, session := range s.sessions {
		if session.Name == name {
			return true
		}
	}
	return false
}

// List returns all sessions, oldest first
func (s *SessionStore) List() []*models.Session {
	s.mu.RLock()
	list := make([]*models.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		list = append(list, session)
	}
	s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].Name < list[j].Name
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

// Len returns the number of stored sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
