package sessions

import (
	"calculator-service/internal/app/services/core/framework"
	"context"
	"sync"
	"time"
)

// Session is one calculator bound to an id.
type Session struct {
	ID         string
	Calculator *framework.Calculator
	ExpiresAt  time.Time
}

// Store keeps sessions in memory. A session expires after ttl without access.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Store) Put(id string, calculator *framework.Calculator) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{ID: id, Calculator: calculator, ExpiresAt: s.now().Add(s.ttl)}
	s.sessions[id] = session
	return session
}

// Get returns the session and extends its lifetime.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if !now.Before(session.ExpiresAt) {
		s.expireLocked(id, session)
		return nil, false
	}
	session.ExpiresAt = now.Add(s.ttl)
	return session, true
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if ok {
		s.expireLocked(id, session)
	}
	return ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			s.expireLocked(id, session)
			removed++
		}
	}
	return removed
}

// DefaultSweepInterval is used by Run when the given interval is not positive.
const DefaultSweepInterval = time.Minute

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// expireLocked resets the calculator so an in-flight submission is cancelled.
func (s *Store) expireLocked(id string, session *Session) {
	delete(s.sessions, id)
	session.Calculator.ResetCalculator()
}
