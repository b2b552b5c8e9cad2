package services

import "sync"

// SessionStore tracks the active navigation page per session. It is scoped to
// the process lifetime; authentication flags and identity travel in the JWT,
// only the page selection lives here.
type SessionStore struct {
	mu    sync.RWMutex
	pages map[string]string // session key -> active page
}

func NewSessionStore() *SessionStore {
	return &SessionStore{pages: map[string]string{}}
}

// ActivePage returns the stored page or the given default for new sessions.
func (s *SessionStore) ActivePage(key, fallback string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if page, ok := s.pages[key]; ok {
		return page
	}
	return fallback
}

func (s *SessionStore) SetActivePage(key, page string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[key] = page
}

// Drop forgets a session on logout.
func (s *SessionStore) Drop(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pages, key)
}
