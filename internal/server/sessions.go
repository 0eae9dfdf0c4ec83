package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
	"github.com/mirsardor-ktng/documint/pkg/form"
	"github.com/mirsardor-ktng/documint/pkg/model"
)

// session holds one uploaded template and its editing state between requests.
type session struct {
	id       string
	doc      docxtpl.Document
	model    model.FormModel
	state    *form.State
	warning  error
	lastSeen time.Time
}

// sessionStore keeps live sessions in memory with TTL-based eviction.
// Expired entries are dropped lazily on access.
type sessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*session
	now      func() time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Put stores a new session and returns its generated id.
func (s *sessionStore) Put(doc docxtpl.Document, m model.FormModel, state *form.State, warning error) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()

	id := uuid.NewString()
	s.sessions[id] = &session{
		id:       id,
		doc:      doc,
		model:    m,
		state:    state,
		warning:  warning,
		lastSeen: s.now(),
	}
	return id
}

// Get fetches a live session and refreshes its TTL.
func (s *sessionStore) Get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess, true
}

// Delete removes a session, typically after the document is downloaded.
func (s *sessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *sessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()
	return len(s.sessions)
}

func (s *sessionStore) evictLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
