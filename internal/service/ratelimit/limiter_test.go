package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(start time.Time) (*Limiter, *time.Time) {
	clock := start
	l := New()
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestAllowConsumesCapacity(t *testing.T) {
	l, _ := newTestLimiter(time.Now())

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("k", 3, 1), "request %d should pass", i)
	}
	assert.False(t, l.Allow("k", 3, 1))
}

func TestAllowRefillsOverTime(t *testing.T) {
	l, clock := newTestLimiter(time.Now())

	assert.True(t, l.Allow("k", 1, 2)) // drain
	assert.False(t, l.Allow("k", 1, 2))

	*clock = clock.Add(500 * time.Millisecond) // 2/s refill -> 1 token back
	assert.True(t, l.Allow("k", 1, 2))
	assert.False(t, l.Allow("k", 1, 2))
}

func TestRefillCapsAtCapacity(t *testing.T) {
	l, clock := newTestLimiter(time.Now())

	assert.True(t, l.Allow("k", 2, 100))
	*clock = clock.Add(time.Hour)

	// only capacity tokens regardless of elapsed time
	assert.True(t, l.Allow("k", 2, 100))
	assert.True(t, l.Allow("k", 2, 100))
	assert.False(t, l.Allow("k", 2, 100))
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Now())

	assert.True(t, l.Allow("a", 1, 1))
	assert.False(t, l.Allow("a", 1, 1))
	assert.True(t, l.Allow("b", 1, 1))
}

func TestStaleBucketsPruned(t *testing.T) {
	l, clock := newTestLimiter(time.Now())

	l.Allow("old", 1, 1)
	*clock = clock.Add(staleAfter + time.Minute)

	// creating a new bucket triggers the prune pass
	l.Allow("fresh", 1, 1)

	l.mu.Lock()
	_, ok := l.buckets["old"]
	l.mu.Unlock()
	assert.False(t, ok)
}
