package navigation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultHandoffTTL is how long a keyed hand-off stays claimable.
const DefaultHandoffTTL = 5 * time.Minute

type handoffEntry struct {
	state   State
	expires time.Time
}

// HandoffStore passes payloads between screens.
//
// Every Put overwrites the latest slot read by Latest, and also files the
// payload under a new token that Claim can redeem exactly once before the
// TTL runs out.
type HandoffStore struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	latest  State
	entries map[string]handoffEntry
}

// NewHandoffStore creates a store whose keyed entries live for ttl.
// A non-positive ttl selects DefaultHandoffTTL.
func NewHandoffStore(ttl time.Duration) *HandoffStore {
	if ttl <= 0 {
		ttl = DefaultHandoffTTL
	}
	return &HandoffStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]handoffEntry),
	}
}

// Put stores state and returns the token it was filed under.
func (s *HandoffStore) Put(state State) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, k)
		}
	}
	s.latest = state
	s.entries[token] = handoffEntry{state: state, expires: now.Add(s.ttl)}
	return token
}

// Latest returns the most recently stored payload, or an empty State if
// nothing was stored yet. The payload is not consumed.
func (s *HandoffStore) Latest() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return State{}
	}
	return s.latest
}

// Claim returns the payload filed under token and forgets it.
func (s *HandoffStore) Claim(token string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return nil, false
	}
	delete(s.entries, token)
	if !s.now().Before(e.expires) {
		return nil, false
	}
	return e.state, true
}

// Len reports the number of keyed entries, including expired ones not yet swept.
func (s *HandoffStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
