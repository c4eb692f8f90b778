package memory

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
)

// SessionStore is an in-memory session repository. Sessions are practice
// state only and are not persisted across restarts.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*domain.Session),
	}
}

// Create stores a new session.
func (s *SessionStore) Create(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = cloneSession(session)
	return nil
}

// GetByID returns a copy of the session with the given ID.
func (s *SessionStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cloneSession(session), nil
}

// Update replaces the stored session.
func (s *SessionStore) Update(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; !ok {
		return domain.ErrSessionNotFound
	}
	s.sessions[session.ID] = cloneSession(session)
	return nil
}

// Delete removes the session with the given ID.
func (s *SessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// DeleteExpired removes all sessions whose last activity is before the cutoff
// and returns the number removed.
func (s *SessionStore) DeleteExpired(_ context.Context, cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.sessions {
		if session.LastActiveAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Sweep periodically deletes sessions idle longer than ttl. It blocks until
// the context is cancelled and is meant to run in its own goroutine.
func (s *SessionStore) Sweep(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.DeleteExpired(ctx, time.Now().Add(-ttl)); n > 0 {
				log.Printf("[SESSION] swept %d expired sessions", n)
			}
		}
	}
}

// cloneSession copies a session so callers never share slices or pointers
// with the store.
func cloneSession(in *domain.Session) *domain.Session {
	out := *in
	if in.Exchanges != nil {
		out.Exchanges = make([]domain.Exchange, len(in.Exchanges))
		copy(out.Exchanges, in.Exchanges)
	}
	if in.Attempts != nil {
		out.Attempts = make([]domain.DrillAttempt, len(in.Attempts))
		copy(out.Attempts, in.Attempts)
	}
	if in.Pending != nil {
		pending := *in.Pending
		out.Pending = &pending
	}
	return &out
}
