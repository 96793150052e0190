package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clinicops/notes-dashboard/internal/domain"
)

// Session is one dashboard's filter state.
type Session struct {
	ID        string
	Selection domain.Selection
	CreatedAt time.Time
	LastSeen  time.Time
}

// SessionStore keeps dashboard sessions in memory. Updates to a session are serialized.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session), now: time.Now}
}

// Create opens a session with an empty selection.
func (s *SessionStore) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	sess := &Session{ID: uuid.NewString(), CreatedAt: now, LastSeen: now}
	s.sessions[sess.ID] = sess
	return *sess
}

// Get returns a copy of the session and marks it as seen.
func (s *SessionStore) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	sess.LastSeen = s.now()
	return *sess, true
}

// Update replaces the session's selection with fn's result.
func (s *SessionStore) Update(id string, fn func(domain.Selection) domain.Selection) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	sess.Selection = fn(sess.Selection)
	sess.LastSeen = s.now()
	return *sess, true
}

// Delete removes the session and reports whether it existed.
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// ExpireIdle removes sessions not seen since before cutoff and returns their ids.
func (s *SessionStore) ExpireIdle(cutoff time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expired []string
	for id, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			expired = append(expired, id)
		}
	}
	return expired
}

// Len returns the number of open sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
