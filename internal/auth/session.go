package auth

import (
	"sync"
	"time"

	"projecthub-backend/internal/models"
)

// Session is the authenticated context attached to attributed operations.
// User is a snapshot taken at login; UserID is the authoritative reference.
type Session struct {
	ID           string      `json:"id"`
	UserID       int         `json:"userId"`
	User         models.User `json:"user"`
	RefreshToken string      `json:"-"`
	ExpiresAt    time.Time   `json:"expiresAt"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// Expired reports whether the session has passed its expiry
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// sessionRegistry is the in-memory store of live sessions, keyed by session
// id and secondarily by refresh token.
type sessionRegistry struct {
	mu        sync.RWMutex
	byID      map[string]*Session
	byRefresh map[string]string
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		byID:      make(map[string]*Session),
		byRefresh: make(map[string]string),
	}
}

func (r *sessionRegistry) put(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[s.ID] = s
	if s.RefreshToken != "" {
		r.byRefresh[s.RefreshToken] = s.ID
	}
}

func (r *sessionRegistry) get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	return s, ok
}

func (r *sessionRegistry) getByRefresh(token string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byRefresh[token]
	if !ok {
		return nil, false
	}
	s, ok := r.byID[id]
	return s, ok
}

func (r *sessionRegistry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byID[id]; ok {
		delete(r.byRefresh, s.RefreshToken)
		delete(r.byID, id)
	}
}
