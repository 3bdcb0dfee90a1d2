package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_SlidingWindow(t *testing.T) {
	l := New(3, 60*time.Second)
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, l.Admit("caller", t0))
	assert.True(t, l.Admit("caller", t0))
	assert.True(t, l.Admit("caller", t0))
	assert.False(t, l.Admit("caller", t0))

	// Window has slid past the first burst.
	assert.True(t, l.Admit("caller", t0.Add(61*time.Second)))
}

func TestLimiter_RejectionConsumesNoBudget(t *testing.T) {
	l := New(2, 60*time.Second)
	t0 := time.Now()

	assert.True(t, l.Admit("k", t0))
	assert.True(t, l.Admit("k", t0))
	for i := 0; i < 10; i++ {
		assert.False(t, l.Admit("k", t0.Add(time.Second)))
	}

	// Only the two admitted timestamps age out; rejections left no trace.
	assert.True(t, l.Admit("k", t0.Add(61*time.Second)))
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := New(1, time.Minute)
	now := time.Now()

	assert.True(t, l.Admit("a", now))
	assert.False(t, l.Admit("a", now))
	assert.True(t, l.Admit("b", now))
}

func TestLimiter_PartialWindowSlide(t *testing.T) {
	l := New(2, 60*time.Second)
	t0 := time.Now()

	assert.True(t, l.Admit("k", t0))
	assert.True(t, l.Admit("k", t0.Add(30*time.Second)))
	assert.False(t, l.Admit("k", t0.Add(45*time.Second)))

	// t0 has aged out but t0+30s has not: exactly one slot free.
	assert.True(t, l.Admit("k", t0.Add(70*time.Second)))
	assert.False(t, l.Admit("k", t0.Add(71*time.Second)))
}

func TestLimiter_Sweep(t *testing.T) {
	l := New(5, time.Minute)
	t0 := time.Now()

	l.Admit("fresh", t0)
	l.Admit("stale", t0.Add(-2*time.Minute))
	assert.Equal(t, 2, l.Len())

	evicted := l.Sweep(t0)
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, l.Len())

	// Swept key starts from a clean slate.
	assert.True(t, l.Admit("stale", t0))
}

func TestLimiter_ConcurrentAdmits(t *testing.T) {
	const limit = 50
	l := New(limit, time.Minute)
	now := time.Now()

	var wg sync.WaitGroup
	admitted := make(chan bool, limit*4)
	for i := 0; i < limit*4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			admitted <- l.Admit("shared", now)
		}()
	}
	wg.Wait()
	close(admitted)

	count := 0
	for ok := range admitted {
		if ok {
			count++
		}
	}
	assert.Equal(t, limit, count)
}

func TestLimiter_ManyKeys(t *testing.T) {
	l := New(1, time.Minute)
	now := time.Now()
	for i := 0; i < 100; i++ {
		assert.True(t, l.Admit(fmt.Sprintf("key-%d", i), now))
	}
	assert.Equal(t, 100, l.Len())
}
