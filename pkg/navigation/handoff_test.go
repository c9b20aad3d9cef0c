package navigation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time         { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(ttl time.Duration) (*HandoffStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewHandoffStore(ttl)
	s.now = clock.now
	return s, clock
}

func TestHandoffClaimExpires(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	token := s.Put(State{"k": "v"})

	clock.advance(time.Minute)
	_, ok := s.Claim(token)
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestHandoffClaimBeforeExpiry(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	token := s.Put(State{"k": "v"})

	clock.advance(59 * time.Second)
	got, ok := s.Claim(token)
	require.True(t, ok)
	assert.Equal(t, State{"k": "v"}, got)
}

func TestHandoffPutSweepsExpired(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	s.Put(State{"n": 1})
	s.Put(State{"n": 2})
	require.Equal(t, 2, s.Len())

	clock.advance(2 * time.Minute)
	s.Put(State{"n": 3})
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, State{"n": 3}, s.Latest(), "the latest slot does not expire")
}

func TestHandoffUnknownToken(t *testing.T) {
	s, _ := newTestStore(0)
	_, ok := s.Claim("nope")
	assert.False(t, ok)
	assert.Equal(t, DefaultHandoffTTL, s.ttl)
}

func TestHandoffConcurrentPuts(t *testing.T) {
	s := NewHandoffStore(time.Minute)

	var wg sync.WaitGroup
	tokens := make([]string, 32)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i] = s.Put(State{"i": i})
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for i, token := range tokens {
		assert.False(t, seen[token], "tokens are unique")
		seen[token] = true
		got, ok := s.Claim(token)
		require.True(t, ok)
		assert.Equal(t, i, got["i"])
	}
}
