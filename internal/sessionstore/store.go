package sessionstore

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/signaura/signaura/internal/catalog"
	"github.com/signaura/signaura/internal/session"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 30 * time.Minute

type entry struct {
	mu       sync.Mutex // held while a request works on the state
	state    *session.State
	lastSeen time.Time
}

// Store keeps live sessions in memory. Expired sessions are dropped lazily
// when they are looked up or when a new session is created.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	catalog  *catalog.Catalog
	ttl      time.Duration
	now      func() time.Time
}

// New creates an empty store. A ttl <= 0 uses DefaultTTL.
func New(c *catalog.Catalog, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*entry),
		catalog:  c,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Lease is exclusive access to one session's state. Release must be called
// when the request is done with it.
type Lease struct {
	State *session.State
	e     *entry
	once  sync.Once
}

// Release gives up the lease. Calling it more than once is safe.
func (l *Lease) Release() {
	l.once.Do(l.e.mu.Unlock)
}

// Create starts a new session and returns it leased.
func (s *Store) Create() *Lease {
	id := uuid.New().String()
	e := &entry{state: session.New(id, s.catalog)}
	e.mu.Lock()

	s.mu.Lock()
	s.pruneLocked()
	e.lastSeen = s.now()
	s.sessions[id] = e
	s.mu.Unlock()

	return &Lease{State: e.state, e: e}
}

// Acquire leases an existing session, blocking while another request holds
// it. Returns ErrNotFound for unknown or expired ids.
func (s *Store) Acquire(id string) (*Lease, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok && s.expiredLocked(e) {
		delete(s.sessions, id)
		ok = false
	}
	if ok {
		e.lastSeen = s.now()
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}
	e.mu.Lock()
	return &Lease{State: e.state, e: e}, nil
}

// Delete ends a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live (unexpired) sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	return len(s.sessions)
}

func (s *Store) expiredLocked(e *entry) bool {
	return s.now().Sub(e.lastSeen) > s.ttl
}

func (s *Store) pruneLocked() {
	for id, e := range s.sessions {
		if s.expiredLocked(e) {
			delete(s.sessions, id)
		}
	}
}
